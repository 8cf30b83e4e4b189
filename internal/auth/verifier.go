// Package auth holds the identity-verification port and the capability
// policy. The core consumes only the verified email; credentials never
// cross into the services.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"zapshift/internal/apperr"
)

// Verifier resolves a bearer credential to a verified email.
type Verifier interface {
	Verify(ctx context.Context, credential string) (string, error)
}

// JWTVerifier verifies HMAC-signed bearer tokens and extracts the email claim.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a JWTVerifier.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the email claim.
func (v *JWTVerifier) Verify(_ context.Context, credential string) (string, error) {
	token, err := jwt.Parse(credential, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.ErrUnauthenticated
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", apperr.ErrUnauthenticated
	}
	return email, nil
}

var _ Verifier = (*JWTVerifier)(nil)
