package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/timesheet-service/internal/directory"
)

func newTestVerifier(t *testing.T) *SharedPasswordVerifier {
	t.Helper()
	v, err := NewSharedPasswordVerifier(directory.FindUserByEmail, "password123", bcrypt.MinCost)
	require.NoError(t, err)
	return v
}

func TestVerifyAcceptsSharedPassword(t *testing.T) {
	v := newTestVerifier(t)

	user, err := v.Verify(context.Background(), "saqib@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Saqib", user.Name)

	user, err = v.Verify(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.Verify(context.Background(), "saqib@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsUnknownEmail(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.Verify(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPasswordFallsBackOnBadCost(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.NoError(t, ComparePassword(hash, "pw"))
}
