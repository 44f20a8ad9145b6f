package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern defines the accepted username format:
// latin letters, digits and underscore, 3-32 characters
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen is the minimum username length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length
	MaxUsernameLen = 32
	// MinPasswordLen is the minimum account password length
	MinPasswordLen = 8
)

// ValidateUsername checks a username against the accepted format
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateIdentifier accepts either a username or an email address. The
// server decides which one it actually is; the client only rejects inputs
// that can be neither.
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if strings.Contains(identifier, "@") {
		return ValidateEmail(identifier)
	}
	return ValidateUsername(identifier)
}

// ValidateEmail performs a minimal shape check. Real validation is the
// server's job.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	if strings.Count(email, "@") != 1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword checks the minimum requirements for an account password
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}
