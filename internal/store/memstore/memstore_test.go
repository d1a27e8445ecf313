package memstore

import (
	"context"
	"testing"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/google/go-cmp/cmp"
)

var ctx = context.Background()

func TestRoundTrip(t *testing.T) {
	s := New()

	users, err := s.LoadUsers(ctx)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if len(users) != 0 {
		t.Errorf("expected an empty store, got %d users", len(users))
	}

	want := []domain.User{{ID: "u1", Username: "alice"}}
	if err = s.SaveUsers(ctx, want); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	users, err = s.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("users did not survive the round trip:\n%s", diff)
	}
}

func TestCallersCannotMutateTheStore(t *testing.T) {
	s := New()

	saved := []domain.Post{{ID: "p1", Content: "original"}}
	if err := s.SavePosts(ctx, saved); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	saved[0].Content = "mutated after save"

	posts, err := s.LoadPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if posts[0].Content != "original" {
		t.Error("the store shares memory with the caller's slice")
	}

	posts[0].Content = "mutated after load"
	posts, _ = s.LoadPosts(ctx)
	if posts[0].Content != "original" {
		t.Error("a loaded slice shares memory with the store")
	}
}

func TestNestedSlicesAreCopied(t *testing.T) {
	s := New()

	if err := s.SaveUsers(ctx, []domain.User{{ID: "u1", Following: []string{"u2", "u3"}}}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := s.SavePosts(ctx, []domain.Post{{ID: "p1", Likes: []string{"u1", "u2"}}}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	users, _ := s.LoadUsers(ctx)
	users[0].Following[0] = "mutated"
	users, _ = s.LoadUsers(ctx)
	if diff := cmp.Diff([]string{"u2", "u3"}, users[0].Following); diff != "" {
		t.Errorf("a loaded following slice shares memory with the store:\n%s", diff)
	}

	posts, _ := s.LoadPosts(ctx)
	posts[0].Likes[0] = "mutated"
	posts, _ = s.LoadPosts(ctx)
	if diff := cmp.Diff([]string{"u1", "u2"}, posts[0].Likes); diff != "" {
		t.Errorf("a loaded likes slice shares memory with the store:\n%s", diff)
	}
}
