package service

import (
	"errors"
	"testing"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/mocks"
	"github.com/YoussefKhattab111/microblog/internal/store/memstore"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	base := RegisterInput{
		FirstName:       "Alice",
		LastName:        "Almeida",
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Secr3t!x",
		ConfirmPassword: "Secr3t!x",
	}

	cases := []struct {
		name   string
		modify func(*RegisterInput)
		err    error
	}{
		{"valid signup", func(in *RegisterInput) {}, nil},
		{"blank first name", func(in *RegisterInput) { in.FirstName = "  " }, ErrInvalidInput},
		{"blank last name", func(in *RegisterInput) { in.LastName = "" }, ErrInvalidInput},
		{"invalid email", func(in *RegisterInput) { in.Email = "alice@nodot" }, ErrInvalidInput},
		{"short username", func(in *RegisterInput) { in.Username = "al" }, ErrInvalidInput},
		{"username starts with digit", func(in *RegisterInput) { in.Username = "1alice" }, ErrInvalidInput},
		{"username with bad characters", func(in *RegisterInput) { in.Username = "ali ce" }, ErrInvalidInput},
		{"username with consecutive separators", func(in *RegisterInput) { in.Username = "a__lice" }, ErrInvalidInput},
		{"password without uppercase", func(in *RegisterInput) { setPassword(in, "secr3t!x") }, ErrInvalidInput},
		{"password without lowercase", func(in *RegisterInput) { setPassword(in, "SECR3T!X") }, ErrInvalidInput},
		{"password without digit", func(in *RegisterInput) { setPassword(in, "Secret!x") }, ErrInvalidInput},
		{"password without symbol", func(in *RegisterInput) { setPassword(in, "Secr3txx") }, ErrInvalidInput},
		{"short password", func(in *RegisterInput) { setPassword(in, "S3t!x") }, ErrInvalidInput},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "Other3t!x" }, ErrInvalidInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestService(memstore.New())
			in := base
			c.modify(&in)

			u, err := s.Register(ctx, in)
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("expected error %q, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if u.ID == "" {
				t.Error("expected a fresh id")
			}
			if u.Name != "Alice Almeida" {
				t.Errorf("expected derived name %q, got %q", "Alice Almeida", u.Name)
			}
			if u.Avatar != "https://avatars.test/?name=Alice+Almeida" {
				t.Errorf("unexpected avatar url: %s", u.Avatar)
			}
			if len(u.Followers) != 0 || len(u.Following) != 0 {
				t.Error("expected empty follow edges")
			}
			if u.Password == "Secr3t!x" {
				t.Error("password stored in the clear")
			}
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Secr3t!x")) != nil {
				t.Error("stored credential does not verify")
			}

			persisted, err := s.Store.LoadUsers(ctx)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if len(persisted) != 1 || persisted[0].ID != u.ID {
				t.Error("user was not persisted")
			}
		})
	}
}

func setPassword(in *RegisterInput, p string) {
	in.Password = p
	in.ConfirmPassword = p
}

func TestRegisterDuplicates(t *testing.T) {
	s := newTestService(memstore.New())
	mustRegister(t, s, "Alice", "Almeida", "alice", "alice@example.com")

	cases := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate username", "alice", "fresh@example.com"},
		{"duplicate username different case", "ALICE", "fresh@example.com"},
		{"duplicate email", "fresh", "alice@example.com"},
		{"duplicate email different case", "fresh", "Alice@Example.COM"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Register(ctx, RegisterInput{
				FirstName:       "Fresh",
				LastName:        "Flores",
				Username:        c.username,
				Email:           c.email,
				Password:        "Secr3t!x",
				ConfirmPassword: "Secr3t!x",
			})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected %q, got %v", ErrInvalidInput, err)
			}
		})
	}

	users, _ := s.Store.LoadUsers(ctx)
	if len(users) != 1 {
		t.Errorf("expected 1 persisted user, got %d", len(users))
	}
}

// A failing validation must not touch the store at all.
func TestRegisterNoPartialWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	s := newTestService(st)

	_, err := s.Register(ctx, RegisterInput{
		FirstName:       "Alice",
		LastName:        "Almeida",
		Username:        "al",
		Email:           "alice@example.com",
		Password:        "Secr3t!x",
		ConfirmPassword: "Secr3t!x",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected %q, got %v", ErrInvalidInput, err)
	}

	// The uniqueness check reads the collection but a duplicate must never
	// reach SaveUsers.
	st.EXPECT().LoadUsers(gomock.Any()).Return([]domain.User{{Username: "alice", Email: "alice@example.com"}}, nil)
	_, err = s.Register(ctx, RegisterInput{
		FirstName:       "Alice",
		LastName:        "Almeida",
		Username:        "alice",
		Email:           "fresh@example.com",
		Password:        "Secr3t!x",
		ConfirmPassword: "Secr3t!x",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected %q, got %v", ErrInvalidInput, err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestService(memstore.New())
	alice := mustRegister(t, s, "Alice", "Almeida", "alice", "alice@example.com")

	cases := []struct {
		name       string
		identifier string
		password   string
		err        error
	}{
		{"by email", "alice@example.com", "Secr3t!x", nil},
		{"by email different case", "Alice@Example.COM", "Secr3t!x", nil},
		{"by username", "alice", "Secr3t!x", nil},
		{"by username different case", "ALICE", "Secr3t!x", nil},
		{"wrong password", "alice@example.com", "wrong", ErrInvalidCredentials},
		{"unknown identifier", "nobody@example.com", "Secr3t!x", ErrInvalidCredentials},
		{"blank password", "alice", "", ErrInvalidCredentials},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u, err := s.Authenticate(ctx, c.identifier, c.password)
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("expected %q, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if u.ID != alice.ID {
				t.Errorf("expected user %s, got %s", alice.ID, u.ID)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newTestService(memstore.New())
	alice := mustRegister(t, s, "Alice", "Almeida", "alice", "alice@example.com")

	longBio := make([]byte, 161)
	for i := range longBio {
		longBio[i] = 'x'
	}

	t.Run("bio too long", func(t *testing.T) {
		_, err := s.UpdateProfile(ctx, alice.ID, ProfileInput{Bio: string(longBio)})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected %q, got %v", ErrInvalidInput, err)
		}
	})

	t.Run("invalid website", func(t *testing.T) {
		_, err := s.UpdateProfile(ctx, alice.ID, ProfileInput{Website: "not a url"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected %q, got %v", ErrInvalidInput, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.UpdateProfile(ctx, "ghost", ProfileInput{Bio: "hi"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected %q, got %v", ErrNotFound, err)
		}
	})

	t.Run("success", func(t *testing.T) {
		u, err := s.UpdateProfile(ctx, alice.ID, ProfileInput{
			Name:     "Alice A.",
			Bio:      "gardener",
			Location: "Lisbon",
			Website:  "https://alice.example.com",
		})
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if u.Name != "Alice A." || u.Bio != "gardener" || u.Location != "Lisbon" {
			t.Errorf("profile fields not applied: %+v", u)
		}
		if u.Avatar != alice.Avatar {
			t.Error("avatar changed although none was supplied")
		}

		persisted, _ := s.GetUser(ctx, alice.ID)
		if persisted.Bio != "gardener" {
			t.Error("profile change was not persisted")
		}
	})
}
