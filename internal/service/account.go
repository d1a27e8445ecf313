package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/YoussefKhattab111/microblog/internal/domain"
	"github.com/YoussefKhattab111/microblog/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the signup form, checks username and email uniqueness
// and appends the new user to the collection. Nothing is persisted when any
// check fails.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	err := validate.SignUpForm(in.FirstName, in.LastName, in.Username, in.Email, in.Password, in.ConfirmPassword)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, in.Username) {
			return domain.User{}, fmt.Errorf("%w: username %q is already taken", ErrInvalidInput, in.Username)
		}
		if strings.EqualFold(u.Email, in.Email) {
			return domain.User{}, fmt.Errorf("%w: email %q is already registered", ErrInvalidInput, in.Email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.Config.BcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	name := in.FirstName + " " + in.LastName
	u := domain.User{
		ID:        s.IDs.New(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Name:      name,
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		Avatar:    fmt.Sprintf(s.Config.AvatarTemplate, url.QueryEscape(name)),
		JoinDate:  s.Clock.Now(),
		Followers: []string{},
		Following: []string{},
	}

	users = append(users, u)
	if err = s.Store.SaveUsers(ctx, users); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Authenticate confirms the user's identity. identifier is either the email
// or the username, compared case-insensitively. The error never says which
// part of the credentials was wrong.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if !strings.EqualFold(u.Email, identifier) && !strings.EqualFold(u.Username, identifier) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			return u, nil
		}
		break
	}
	return domain.User{}, ErrInvalidCredentials
}

func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
}

type ProfileInput struct {
	Name       string
	Bio        string
	Location   string
	Website    string
	Avatar     string
	CoverImage string
}

// UpdateProfile edits the caller's own record. Blank Name and Avatar keep
// their current values; the remaining fields are overwritten as given.
func (s *Service) UpdateProfile(ctx context.Context, selfID string, in ProfileInput) (domain.User, error) {
	if err := validate.Bio(in.Bio); err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validate.Website(strings.TrimSpace(in.Website)); err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for i := range users {
		if users[i].ID != selfID {
			continue
		}
		if name := strings.TrimSpace(in.Name); name != "" {
			users[i].Name = name
		}
		users[i].Bio = in.Bio
		users[i].Location = in.Location
		users[i].Website = strings.TrimSpace(in.Website)
		if in.Avatar != "" {
			users[i].Avatar = in.Avatar
		}
		if in.CoverImage != "" {
			users[i].CoverImage = in.CoverImage
		}
		if err = s.Store.SaveUsers(ctx, users); err != nil {
			return domain.User{}, err
		}
		return users[i], nil
	}
	return domain.User{}, fmt.Errorf("%w: user %s", ErrNotFound, selfID)
}
