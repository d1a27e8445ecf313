// Package service implements the microblog core: identity, the social
// graph, the feed engine and user search. Every operation is a synchronous
// read-modify-write over a Store collection; the signed-in identity is
// always passed in by the caller, never read from ambient state.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/YoussefKhattab111/microblog/internal/config"
	"github.com/YoussefKhattab111/microblog/internal/notify"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermission         = errors.New("operation not permitted")
	ErrNotFound           = errors.New("not found")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrEmptyPost          = errors.New("post needs content or an image")
	ErrEmptyComment       = errors.New("empty comment")
	ErrQueryTooShort      = errors.New("search query too short")
)

// Clock abstracts time retrieval so the feed ordering is deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation.
type IDGenerator interface {
	New() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

type Service struct {
	Config   config.Configuration
	Store    store.Store
	Clock    Clock
	IDs      IDGenerator
	Notifier notify.Notifier
	DMP      *diffmatchpatch.DiffMatchPatch
}

func New(cfg config.Configuration, st store.Store, notifier notify.Notifier) Service {
	return Service{
		Config:   cfg,
		Store:    st,
		Clock:    RealClock{},
		IDs:      UUIDGenerator{},
		Notifier: notifier,
		DMP:      diffmatchpatch.New(),
	}
}

// notify fires a notification without letting delivery failures reach the
// caller.
func (s *Service) notify(ctx context.Context, userID, message string, severity notify.Severity) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, message, severity); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to enqueue notification")
	}
}
