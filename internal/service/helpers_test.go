package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/YoussefKhattab111/microblog/internal/config"
	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/YoussefKhattab111/microblog/internal/store/memstore"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/crypto/bcrypt"
)

var ctx = context.Background()

// seqClock hands out strictly increasing timestamps, one second apart.
type seqClock struct {
	t time.Time
}

func (c *seqClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// seqIDs hands out id-1, id-2, ...
type seqIDs struct {
	n int
}

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestService(st store.Store) *Service {
	return &Service{
		Config: config.Configuration{
			AvatarTemplate: "https://avatars.test/?name=%s",
			BcryptCost:     bcrypt.MinCost,
		},
		Store: st,
		Clock: &seqClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		IDs:   &seqIDs{},
		DMP:   diffmatchpatch.New(),
	}
}

func mustRegister(t *testing.T, s *Service, first, last, username, email string) domain.User {
	t.Helper()
	u, err := s.Register(ctx, RegisterInput{
		FirstName:       first,
		LastName:        last,
		Username:        username,
		Email:           email,
		Password:        "Secr3t!x",
		ConfirmPassword: "Secr3t!x",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %s", username, err)
	}
	return u
}

func newPopulatedService(t *testing.T) (*Service, []domain.User) {
	t.Helper()
	s := newTestService(memstore.New())
	alice := mustRegister(t, s, "Alice", "Almeida", "alice", "alice@example.com")
	bruno := mustRegister(t, s, "Bruno", "Barros", "bruno", "bruno@example.com")
	carla := mustRegister(t, s, "Carla", "Costa", "carla", "carla@example.com")
	return s, []domain.User{alice, bruno, carla}
}
