package model

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered user of the remote store.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// FullName returns the display name of the user.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Registration is the data required to register a new user.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Validate validates the registration presence checks.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("first name is required: %w", ErrNotValid)
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("last name is required: %w", ErrNotValid)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required: %w", ErrNotValid)
	}
	if r.Password == "" {
		return fmt.Errorf("password is required: %w", ErrNotValid)
	}
	return nil
}

// Credentials are the data required to log in.
type Credentials struct {
	Email    string
	Password string
}

// Validate validates the credentials presence checks.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("email is required: %w", ErrNotValid)
	}
	if c.Password == "" {
		return fmt.Errorf("password is required: %w", ErrNotValid)
	}
	return nil
}
