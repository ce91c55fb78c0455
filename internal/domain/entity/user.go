package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// User represents an account holding a credit balance
type User struct {
	ID        uint64    // Unique identifier for the user
	Email     string    // Identity used by every other record
	Name      string    // Display name reported by the auth provider
	credits   int64     // Whole credits, never negative (private)
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a new user with the given email and starting credits
func NewUser(email, name string, initialCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if initialCredits < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &User{
		Email:     email,
		Name:      strings.TrimSpace(name),
		credits:   initialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Credits returns the current balance
func (u *User) Credits() int64 {
	return u.credits
}

// RestoreCredits sets the balance without touching timestamps (for repositories)
func (u *User) RestoreCredits(credits int64) {
	u.credits = credits
}

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail performs a shallow syntax check on an email address
func ValidateEmail(email string) error {
	if email == "" {
		return errs.ErrInvalidEmail
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n") {
		return errs.ErrInvalidEmail
	}
	return nil
}

// ValidateAmount rejects zero and negative credit amounts
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}
