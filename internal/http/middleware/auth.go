package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"zapshift/internal/apperr"
	"zapshift/internal/auth"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

type ctxKey int

const emailKey ctxKey = 0

// VerifiedEmail returns the email set by Authenticate, or "".
func VerifiedEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// WithVerifiedEmail returns a context carrying a verified email, as
// Authenticate would set it.
func WithVerifiedEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// Auth verifies bearer credentials and evaluates capability checks before
// a request reaches its handler.
type Auth struct {
	verifier auth.Verifier
	policy   *auth.Policy
	logger   logx.Logger
}

// NewAuth creates the auth middleware.
func NewAuth(verifier auth.Verifier, policy *auth.Policy, logger logx.Logger) *Auth {
	return &Auth{verifier: verifier, policy: policy, logger: logger}
}

// Authenticate extracts the bearer credential, verifies it, and stores the
// verified email in the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeAuthError(w, http.StatusUnauthorized, "missing credential")
			return
		}

		email, err := a.verifier.Verify(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithVerifiedEmail(r.Context(), email)))
	})
}

// Require returns middleware that admits only the given roles. It must
// run after Authenticate.
func (a *Auth) Require(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := VerifiedEmail(r.Context())
			if email == "" {
				writeAuthError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			err := a.policy.Require(r.Context(), email, roles...)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, apperr.ErrForbidden):
				writeAuthError(w, http.StatusForbidden, "forbidden")
			default:
				a.logger.Error("capability check failed", logx.Err(err))
				writeAuthError(w, http.StatusInternalServerError, "internal error")
			}
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
