package auth

import (
	"context"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
)

type roleSource interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Policy evaluates capability checks before core operations are invoked.
// It keeps role decisions out of the operations themselves.
type Policy struct {
	users roleSource
}

// NewPolicy creates a Policy backed by the user store.
func NewPolicy(users roleSource) *Policy {
	return &Policy{users: users}
}

// Require checks that the verified email holds one of the given roles.
// An unknown user holds the implicit default role.
func (p *Policy) Require(ctx context.Context, email string, roles ...domain.Role) error {
	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	role := domain.RoleUser
	if u != nil {
		role = u.Role
	}
	for _, r := range roles {
		if role == r {
			return nil
		}
	}
	return apperr.ErrForbidden
}
