package sqlitestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/initialization"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/google/go-cmp/cmp"
)

var ss *SQLiteStore
var ctx = context.Background()

func TestMain(m *testing.M) {
	db, err := initialization.OpenDB("file:temp?mode=memory")
	if err != nil {
		return
	}

	if err = initialization.SetupDB(db, "../../../migrations", "temp"); err != nil {
		return
	}
	ss = New(db)
	m.Run()
}

func TestLoadMissingRecords(t *testing.T) {
	users, err := ss.LoadUsers(ctx)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users before the first save, got %d", len(users))
	}

	posts, err := ss.LoadPosts(ctx)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts before the first save, got %d", len(posts))
	}
}

func TestRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)
	users := []domain.User{
		{
			ID:        "u1",
			Name:      "Alice Almeida",
			Username:  "alice",
			Email:     "alice@example.com",
			JoinDate:  at,
			Followers: []string{},
			Following: []string{"u2"},
		},
	}
	posts := []domain.Post{
		{
			ID:        "p1",
			UserID:    "u1",
			Content:   "hello, world!",
			CreatedAt: at,
			Likes:     []string{},
			Comments:  []domain.Comment{},
			Shares:    3,
		},
	}

	if err := ss.SaveUsers(ctx, users); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := ss.SavePosts(ctx, posts); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	gotUsers, err := ss.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(users, gotUsers); diff != "" {
		t.Errorf("users did not survive the round trip:\n%s", diff)
	}

	gotPosts, err := ss.LoadPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(posts, gotPosts); diff != "" {
		t.Errorf("posts did not survive the round trip:\n%s", diff)
	}
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	if err := ss.SaveUsers(ctx, []domain.User{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := ss.SaveUsers(ctx, []domain.User{{ID: "c"}}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	users, err := ss.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(users) != 1 || users[0].ID != "c" {
		t.Errorf("expected only the last snapshot, got %+v", users)
	}
}

func TestCorruptedRecord(t *testing.T) {
	_, err := ss.db.ExecContext(ctx,
		`INSERT INTO records(name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body`,
		store.PostsRecord, "{not json")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = ss.LoadPosts(ctx)
	if !errors.Is(err, store.ErrCorrupted) {
		t.Errorf("unexpected error type.\nexpected: %s\ngot: %s\n", store.ErrCorrupted, err)
	}
}
