package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	t.Parallel()

	v := NewJWTVerifier("test-secret")

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		tok := signToken(t, "test-secret", jwt.MapClaims{
			"email": "sender@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		email, err := v.Verify(context.Background(), tok)
		require.NoError(t, err)
		require.Equal(t, "sender@example.com", email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		tok := signToken(t, "other-secret", jwt.MapClaims{"email": "sender@example.com"})
		_, err := v.Verify(context.Background(), tok)
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		tok := signToken(t, "test-secret", jwt.MapClaims{
			"email": "sender@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})
		_, err := v.Verify(context.Background(), tok)
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("missing email claim", func(t *testing.T) {
		t.Parallel()

		tok := signToken(t, "test-secret", jwt.MapClaims{"sub": "123"})
		_, err := v.Verify(context.Background(), tok)
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("garbage credential", func(t *testing.T) {
		t.Parallel()

		_, err := v.Verify(context.Background(), "not.a.token")
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}

type stubRoleSource struct {
	users map[string]*domain.User
}

func (s *stubRoleSource) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.users[email], nil
}

func TestPolicy_Require(t *testing.T) {
	t.Parallel()

	p := NewPolicy(&stubRoleSource{users: map[string]*domain.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin},
		"rider@example.com": {ID: 2, Email: "rider@example.com", Role: domain.RoleRider},
	}})

	require.NoError(t, p.Require(context.Background(), "admin@example.com", domain.RoleAdmin))
	require.NoError(t, p.Require(context.Background(), "rider@example.com", domain.RoleRider, domain.RoleAdmin))

	err := p.Require(context.Background(), "rider@example.com", domain.RoleAdmin)
	require.ErrorIs(t, err, apperr.ErrForbidden)

	// unknown users hold the implicit default role
	require.NoError(t, p.Require(context.Background(), "stranger@example.com", domain.RoleUser))
	err = p.Require(context.Background(), "stranger@example.com", domain.RoleAdmin)
	require.ErrorIs(t, err, apperr.ErrForbidden)
}
