package service

import (
	"context"
	"fmt"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/notify"
)

// ToggleFollow flips the follow edge between the caller and the target.
// Both sides of the edge are updated in the same write, so the collections
// stay symmetric; toggling twice restores the original state.
func (s *Service) ToggleFollow(ctx context.Context, followerID, targetID string) (domain.FollowState, error) {
	if followerID == targetID {
		return "", ErrSelfFollow
	}

	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return "", err
	}

	follower, target := -1, -1
	for i := range users {
		switch users[i].ID {
		case followerID:
			follower = i
		case targetID:
			target = i
		}
	}
	if follower == -1 {
		return "", fmt.Errorf("%w: user %s", ErrNotFound, followerID)
	}
	if target == -1 {
		return "", fmt.Errorf("%w: user %s", ErrNotFound, targetID)
	}

	state := domain.StateFollowing
	if users[follower].Follows(targetID) {
		users[follower].Following = remove(users[follower].Following, targetID)
		users[target].Followers = remove(users[target].Followers, followerID)
		state = domain.StateNotFollowing
	} else {
		users[follower].Following = append(users[follower].Following, targetID)
		users[target].Followers = append(users[target].Followers, followerID)
	}

	if err = s.Store.SaveUsers(ctx, users); err != nil {
		return "", err
	}

	if state == domain.StateFollowing {
		s.notify(ctx, targetID, fmt.Sprintf("%s started following you", users[follower].Name), notify.SeverityInfo)
	}
	return state, nil
}

// Followers expands the target's follower edges into profiles, in edge
// insertion order. Dangling ids are skipped.
func (s *Service) Followers(ctx context.Context, userID string) ([]domain.Profile, error) {
	return s.expandEdges(ctx, userID, func(u domain.User) []string { return u.Followers })
}

// Following is the counterpart of Followers for outgoing edges.
func (s *Service) Following(ctx context.Context, userID string) ([]domain.Profile, error) {
	return s.expandEdges(ctx, userID, func(u domain.User) []string { return u.Following })
}

func (s *Service) expandEdges(ctx context.Context, userID string, edges func(domain.User) []string) ([]domain.Profile, error) {
	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	u, ok := byID[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	profiles := []domain.Profile{}
	for _, id := range edges(u) {
		if other, ok := byID[id]; ok {
			profiles = append(profiles, other.Profile())
		}
	}
	return profiles, nil
}

// remove returns a fresh slice; the input may alias a store snapshot and
// must stay intact.
func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
