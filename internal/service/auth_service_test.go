package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/directory"
	"github.com/spec-kit/timesheet-service/internal/domain"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	verifier, err := auth.NewSharedPasswordVerifier(directory.FindUserByEmail, "password123", bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(config.AuthConfig{JWTSecret: "test", AccessTokenTTLMinutes: 5}, verifier)
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthService(t)

	user, token, exp, err := svc.Login(context.Background(), "saqib@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, _, err := svc.Login(context.Background(), "saqib@example.com", "wrong")
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Invalid email or password", de.Message)
}

type failingVerifier struct{ err error }

func (v failingVerifier) Verify(context.Context, string, string) (*domain.User, error) {
	return nil, v.err
}

func TestLoginVerifierFailureIsInternal(t *testing.T) {
	boom := errors.New("directory offline")
	svc := NewAuthService(config.AuthConfig{JWTSecret: "test"}, failingVerifier{err: boom})

	_, _, _, err := svc.Login(context.Background(), "saqib@example.com", "password123")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}
