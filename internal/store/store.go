// Package store defines the persistence contract for the two microblog
// collections. Each save fully overwrites the persisted record; the last
// writer wins. Backends live in the subpackages.
package store

import (
	"context"
	"errors"

	"github.com/YoussefKhattab111/microblog/internal/domain"
)

var (
	ErrInternal = errors.New("internal storage error")
	// ErrCorrupted is returned when a persisted record exists but cannot be
	// parsed. Reads may fall back to an empty collection after surfacing it;
	// writes never do.
	ErrCorrupted = errors.New("persisted record is corrupted")
)

// Record names under which the collections are persisted.
const (
	UsersRecord = "users"
	PostsRecord = "posts"
)

type Store interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
	LoadPosts(ctx context.Context) ([]domain.Post, error)
	SavePosts(ctx context.Context, posts []domain.Post) error
}
