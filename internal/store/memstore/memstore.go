// Package memstore is an in-memory Store. It backs tests and the "memory"
// backend, where nothing outlives the process.
package memstore

import (
	"context"
	"sync"

	"github.com/YoussefKhattab111/microblog/internal/domain"
)

type MemStore struct {
	mu    sync.RWMutex
	users []domain.User
	posts []domain.Post
}

func New() *MemStore {
	return &MemStore{}
}

func (s *MemStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.users), nil
}

func (s *MemStore) SaveUsers(ctx context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = copyUsers(users)
	return nil
}

func (s *MemStore) LoadPosts(ctx context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPosts(s.posts), nil
}

func (s *MemStore) SavePosts(ctx context.Context, posts []domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = copyPosts(posts)
	return nil
}

// The copies go all the way down: nested slices must not alias the store's
// live state, or a caller-side append or compaction would leak into every
// snapshot handed out before it.
func copyUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		u.Followers = cloneIDs(u.Followers)
		u.Following = cloneIDs(u.Following)
		out[i] = u
	}
	return out
}

func copyPosts(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, len(posts))
	for i, p := range posts {
		p.Images = cloneIDs(p.Images)
		p.Likes = cloneIDs(p.Likes)
		if p.Comments != nil {
			comments := make([]domain.Comment, len(p.Comments))
			copy(comments, p.Comments)
			p.Comments = comments
		}
		if p.Revisions != nil {
			revisions := make([]domain.Revision, len(p.Revisions))
			copy(revisions, p.Revisions)
			p.Revisions = revisions
		}
		out[i] = p
	}
	return out
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
