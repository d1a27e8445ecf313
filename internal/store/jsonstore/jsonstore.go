// Package jsonstore persists each collection as one JSON file under a root
// directory.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/gruf/go-mutexes"
	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

type JSONStore struct {
	Root  string
	locks *mutexes.MutexMap
}

func New(root string) (*JSONStore, error) {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		log.Error().Str("root", root).Msg("store root is not a directory")
		return nil, store.ErrInternal
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to set up json store root")
		return nil, store.ErrInternal
	}

	locks := mutexes.MutexMap{}
	return &JSONStore{
		Root:  root,
		locks: &locks,
	}, nil
}

func (s *JSONStore) LoadUsers(ctx context.Context) (users []domain.User, err error) {
	err = s.load(store.UsersRecord, &users)
	return
}

func (s *JSONStore) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.save(store.UsersRecord, users)
}

func (s *JSONStore) LoadPosts(ctx context.Context) (posts []domain.Post, err error) {
	err = s.load(store.PostsRecord, &posts)
	return
}

func (s *JSONStore) SavePosts(ctx context.Context, posts []domain.Post) error {
	return s.save(store.PostsRecord, posts)
}

func (s *JSONStore) load(record string, dst any) error {
	unlock := s.locks.RLock(record)
	defer unlock()

	content, err := os.ReadFile(s.path(record))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		log.Error().Err(err).Str("record", record).Msg("failed to read record")
		return store.ErrInternal
	}

	if err = json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("%w: record %q: %s", store.ErrCorrupted, record, err)
	}
	return nil
}

func (s *JSONStore) save(record string, v any) error {
	unlock := s.locks.Lock(record)
	defer unlock()

	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("record", record).Msg("failed to marshal record")
		return store.ErrInternal
	}

	if err = atomic.WriteFile(s.path(record), bytes.NewReader(content)); err != nil {
		log.Error().Err(err).Str("record", record).Msg("failed to write record")
		return store.ErrInternal
	}
	return nil
}

func (s *JSONStore) path(record string) string {
	return filepath.Join(s.Root, record+".json")
}
