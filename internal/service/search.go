package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/YoussefKhattab111/microblog/internal/domain"
)

const (
	// MaxSearchResults caps the result count; matches are returned in
	// original collection order, not ranked.
	MaxSearchResults = 10
	// MinQueryLen is the usable precondition: shorter queries mean no search
	// is performed.
	MinQueryLen = 2
)

// SearchUsers matches the query as a case-insensitive substring of the name
// or the username.
func SearchUsers(query string, users []domain.User) []domain.User {
	term := strings.ToLower(query)
	matches := []domain.User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Username), term) {
			matches = append(matches, u)
			if len(matches) == MaxSearchResults {
				break
			}
		}
	}
	return matches
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLen {
		return nil, ErrQueryTooShort
	}

	users, err := s.Store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := []domain.Profile{}
	for _, u := range SearchUsers(query, users) {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}
