package auth

import (
	"context"
	"errors"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialVerifier checks a login attempt and returns the matching user.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}

// UserLookup resolves seeded users by email.
type UserLookup func(email string) (domain.User, bool)

// SharedPasswordVerifier accepts one shared password for every known user.
// The password is held only as a bcrypt hash.
type SharedPasswordVerifier struct {
	lookup UserLookup
	hash   string
}

// NewSharedPasswordVerifier hashes password once and returns the verifier.
func NewSharedPasswordVerifier(lookup UserLookup, password string, bcryptCost int) (*SharedPasswordVerifier, error) {
	hash, err := HashPassword(password, bcryptCost)
	if err != nil {
		return nil, err
	}
	return &SharedPasswordVerifier{lookup: lookup, hash: hash}, nil
}

// Verify implements CredentialVerifier.
func (v *SharedPasswordVerifier) Verify(_ context.Context, email, password string) (*domain.User, error) {
	user, ok := v.lookup(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(v.hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
