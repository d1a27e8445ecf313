package validate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MinUsernameLen = 3
	MaxUsernameLen = 64
	MaxBioLen      = 160

	// PasswordSymbols is the punctuation set a password must draw at least
	// one character from.
	PasswordSymbols = `!@#$%^&*(),.?":{}|<>`
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUpForm checks every field of a registration request and reports all
// problems at once.
func SignUpForm(firstName, lastName, username, email, password, confirm string) error {
	var errs = []error{}

	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, errors.New("first name is required"))
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, errors.New("last name is required"))
	}

	errs = append(errs, Username(username))
	errs = append(errs, Email(email))
	errs = append(errs, Password(password))

	if password != confirm {
		errs = append(errs, errors.New("passwords do not match"))
	}

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}

	switch {
	case !upper:
		return errors.New("password needs an uppercase letter")
	case !lower:
		return errors.New("password needs a lowercase letter")
	case !digit:
		return errors.New("password needs a digit")
	case !symbol:
		return fmt.Errorf("password needs a symbol from %s", PasswordSymbols)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func Username(username string) error {
	if l := utf8.RuneCountInString(username); l == 0 {
		return errors.New("empty username")
	} else if l < MinUsernameLen {
		return fmt.Errorf("username too short; min %d characters", MinUsernameLen)
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}

	first := rune(username[0])
	if first > unicode.MaxASCII || !unicode.IsLetter(first) {
		return errors.New("username must start with a letter")
	}

	var prevSeparator bool
	for _, r := range username[1:] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			prevSeparator = false
		case r == '_':
			if prevSeparator {
				return errors.New("username cannot contain consecutive separators")
			}
			prevSeparator = true
		default:
			return errors.New("username can only contain letters, numbers, and underscores")
		}
	}
	return nil
}

// Bio checks the profile biography length.
func Bio(bio string) error {
	if len(bio) > MaxBioLen {
		return fmt.Errorf("bio too long; max %d characters", MaxBioLen)
	}
	return nil
}

// Website accepts an empty value or anything that parses as an absolute URL.
func Website(website string) error {
	if website == "" {
		return nil
	}
	u, err := url.Parse(website)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid website URL: %s", website)
	}
	return nil
}

// ImageRef accepts an absolute URL or inline data (a data: URI).
func ImageRef(ref string) error {
	if strings.HasPrefix(ref, "data:") {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid image reference: %s", ref)
	}
	return nil
}
