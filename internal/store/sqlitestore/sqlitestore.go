// Package sqlitestore keeps each collection as a whole JSON blob in a single
// keyed table, preserving the last-writer-wins snapshot semantics of the
// store contract while living in SQLite.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) LoadUsers(ctx context.Context) (users []domain.User, err error) {
	err = s.load(ctx, store.UsersRecord, &users)
	return
}

func (s *SQLiteStore) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.save(ctx, store.UsersRecord, users)
}

func (s *SQLiteStore) LoadPosts(ctx context.Context) (posts []domain.Post, err error) {
	err = s.load(ctx, store.PostsRecord, &posts)
	return
}

func (s *SQLiteStore) SavePosts(ctx context.Context, posts []domain.Post) error {
	return s.save(ctx, store.PostsRecord, posts)
}

func (s *SQLiteStore) load(ctx context.Context, record string, dst any) error {
	row := s.db.QueryRowContext(ctx, "SELECT body FROM records WHERE name = ?", record)

	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		log.Error().Err(err).Str("record", record).Msg("failed to read record")
		return store.ErrInternal
	}

	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("%w: record %q: %s", store.ErrCorrupted, record, err)
	}
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, record string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("record", record).Msg("failed to marshal record")
		return store.ErrInternal
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records(name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body`,
		record, string(body))
	if err != nil {
		log.Error().Err(err).Str("record", record).Msg("failed to write record")
		return store.ErrInternal
	}
	return nil
}
