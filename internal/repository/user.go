package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/domain"
)

// UserRepo represents user account repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// GetByEmail returns the user, or nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.Role)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", email, err)
	}
	return &u, nil
}

// Ensure creates the user row on first sight with the default role.
func (r *UserRepo) Ensure(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (email, role)
        VALUES ($1, $2)
        ON CONFLICT (email) DO NOTHING
    `, email, domain.RoleUser)
	if err != nil {
		return fmt.Errorf("ensure user %q: %w", email, err)
	}
	return nil
}
