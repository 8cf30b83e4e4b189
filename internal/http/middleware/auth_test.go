package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"zapshift/internal/apperr"
	"zapshift/internal/auth"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

type stubVerifier struct {
	email string
	err   error
}

func (s stubVerifier) Verify(context.Context, string) (string, error) {
	return s.email, s.err
}

type stubUsers struct {
	roles map[string]domain.Role
}

func (s stubUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	role, ok := s.roles[email]
	if !ok {
		return nil, nil
	}
	return &domain.User{Email: email, Role: role}, nil
}

func newTestAuth(v auth.Verifier, roles map[string]domain.Role) *Auth {
	return NewAuth(v, auth.NewPolicy(stubUsers{roles: roles}), logx.Nop())
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "admin@example.com", VerifiedEmail(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		t.Parallel()

		a := newTestAuth(stubVerifier{email: "admin@example.com"}, nil)
		h := a.Authenticate(next)

		r := httptest.NewRequest(http.MethodGet, "/parcels", nil)
		r.Header.Set("Authorization", "Bearer sometoken")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		a := newTestAuth(stubVerifier{email: "admin@example.com"}, nil)
		h := a.Authenticate(next)

		r := httptest.NewRequest(http.MethodGet, "/parcels", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected credential", func(t *testing.T) {
		t.Parallel()

		a := newTestAuth(stubVerifier{err: apperr.ErrUnauthenticated}, nil)
		h := a.Authenticate(next)

		r := httptest.NewRequest(http.MethodGet, "/parcels", nil)
		r.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequire(t *testing.T) {
	t.Parallel()

	roles := map[string]domain.Role{
		"admin@example.com": domain.RoleAdmin,
		"rider@example.com": domain.RoleRider,
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	serve := func(t *testing.T, email string, requiredRoles ...domain.Role) *httptest.ResponseRecorder {
		t.Helper()
		a := newTestAuth(stubVerifier{}, roles)
		h := a.Require(requiredRoles...)(next)

		r := httptest.NewRequest(http.MethodPost, "/parcels/7/assign", nil)
		if email != "" {
			r = r.WithContext(WithVerifiedEmail(r.Context(), email))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	t.Run("admin allowed", func(t *testing.T) {
		t.Parallel()
		w := serve(t, "admin@example.com", domain.RoleAdmin)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("rider in allowed set", func(t *testing.T) {
		t.Parallel()
		w := serve(t, "rider@example.com", domain.RoleRider, domain.RoleAdmin)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		t.Parallel()
		w := serve(t, "someone@example.com", domain.RoleAdmin)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no verified email", func(t *testing.T) {
		t.Parallel()
		w := serve(t, "", domain.RoleAdmin)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
