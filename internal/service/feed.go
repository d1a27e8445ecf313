package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/notify"
	"github.com/YoussefKhattab111/microblog/internal/validate"
)

// LikeState is the outcome of a like toggle, enough for the caller to update
// its presentation without re-querying.
type LikeState struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// Publish creates a post owned by the author and prepends it to the feed.
func (s *Service) Publish(ctx context.Context, authorID, content string, images []string) (domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && len(images) == 0 {
		return domain.Post{}, ErrEmptyPost
	}
	if len(images) > domain.MaxPostImages {
		return domain.Post{}, fmt.Errorf("%w: at most %d images per post", ErrInvalidInput, domain.MaxPostImages)
	}
	for _, img := range images {
		if err := validate.ImageRef(img); err != nil {
			return domain.Post{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
	}

	if _, err := s.GetUser(ctx, authorID); err != nil {
		return domain.Post{}, err
	}

	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	p := domain.Post{
		ID:        s.IDs.New(),
		UserID:    authorID,
		Content:   content,
		Images:    append([]string{}, images...),
		CreatedAt: s.Clock.Now(),
		Likes:     []string{},
		Comments:  []domain.Comment{},
	}

	posts = append([]domain.Post{p}, posts...)
	if err = s.Store.SavePosts(ctx, posts); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

// Edit replaces the post content. Only the owner may edit; a blank or
// identical new content is a no-op. Each effective edit is recorded as a
// revision patch.
func (s *Service) Edit(ctx context.Context, editorID, postID, newContent string) (domain.Post, error) {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	i := findPost(posts, postID)
	if i == -1 {
		return domain.Post{}, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}
	if posts[i].UserID != editorID {
		return domain.Post{}, fmt.Errorf("%w: you can only edit your own posts", ErrPermission)
	}

	newContent = strings.TrimSpace(newContent)
	if newContent == "" || newContent == posts[i].Content {
		return posts[i], nil
	}

	patch := s.DMP.PatchToText(s.DMP.PatchMake(posts[i].Content, newContent))
	posts[i].Content = newContent
	posts[i].Edited = true
	posts[i].Revisions = append(posts[i].Revisions, domain.Revision{
		At:   s.Clock.Now(),
		Diff: patch,
	})

	if err = s.Store.SavePosts(ctx, posts); err != nil {
		return domain.Post{}, err
	}
	return posts[i], nil
}

// Remove deletes the post. Only the owner may delete; deletion is permanent
// once authorized.
func (s *Service) Remove(ctx context.Context, requesterID, postID string) error {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return err
	}

	i := findPost(posts, postID)
	if i == -1 {
		return fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}
	if posts[i].UserID != requesterID {
		return fmt.Errorf("%w: you can only delete your own posts", ErrPermission)
	}

	posts = append(posts[:i], posts[i+1:]...)
	return s.Store.SavePosts(ctx, posts)
}

// ToggleLike adds the user to the post's likes if absent, else removes them.
func (s *Service) ToggleLike(ctx context.Context, userID, postID string) (LikeState, error) {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return LikeState{}, err
	}

	i := findPost(posts, postID)
	if i == -1 {
		return LikeState{}, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}

	state := LikeState{Liked: true}
	if posts[i].LikedBy(userID) {
		posts[i].Likes = remove(posts[i].Likes, userID)
		state.Liked = false
	} else {
		posts[i].Likes = append(posts[i].Likes, userID)
	}
	state.Count = len(posts[i].Likes)

	if err = s.Store.SavePosts(ctx, posts); err != nil {
		return LikeState{}, err
	}

	if state.Liked && posts[i].UserID != userID {
		s.notify(ctx, posts[i].UserID, "someone liked your post", notify.SeverityInfo)
	}
	return state, nil
}

// AddComment appends a comment to the post; ordering is insertion order.
func (s *Service) AddComment(ctx context.Context, authorID, postID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, ErrEmptyComment
	}

	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return domain.Comment{}, err
	}

	i := findPost(posts, postID)
	if i == -1 {
		return domain.Comment{}, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}

	c := domain.Comment{
		ID:        s.IDs.New(),
		UserID:    authorID,
		Content:   content,
		CreatedAt: s.Clock.Now(),
	}
	posts[i].Comments = append(posts[i].Comments, c)

	if err = s.Store.SavePosts(ctx, posts); err != nil {
		return domain.Comment{}, err
	}

	if posts[i].UserID != authorID {
		s.notify(ctx, posts[i].UserID, "new comment on your post", notify.SeverityInfo)
	}
	return c, nil
}

// Share increments the share counter unconditionally; reshares by the same
// user are not deduplicated.
func (s *Service) Share(ctx context.Context, postID string) (int, error) {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return 0, err
	}

	i := findPost(posts, postID)
	if i == -1 {
		return 0, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}

	posts[i].Shares++
	if err = s.Store.SavePosts(ctx, posts); err != nil {
		return 0, err
	}
	return posts[i].Shares, nil
}

// FeedOrder returns the posts newest first. The sort is stable: posts with
// equal timestamps keep their relative insertion order.
func FeedOrder(posts []domain.Post) []domain.Post {
	ordered := make([]domain.Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	return ordered
}

func (s *Service) Feed(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}
	return FeedOrder(posts), nil
}

// UserPosts is the feed filtered to one owner, same ordering.
func (s *Service) UserPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	posts, err := s.Store.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}

	own := []domain.Post{}
	for _, p := range posts {
		if p.UserID == userID {
			own = append(own, p)
		}
	}
	return FeedOrder(own), nil
}

func findPost(posts []domain.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
