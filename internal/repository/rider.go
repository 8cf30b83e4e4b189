package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
)

// RiderRepo represents rider repository.
type RiderRepo struct{ db *pgxpool.Pool }

// NewRiderRepo creates a new RiderRepo.
func NewRiderRepo(db *pgxpool.Pool) *RiderRepo { return &RiderRepo{db: db} }

// Get - returns rider by its ID, or nil when absent.
func (r *RiderRepo) Get(ctx context.Context, id int64) (*domain.Rider, error) {
	var c domain.Rider
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, district, work_status, approval FROM riders WHERE id=$1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.District, &c.WorkStatus, &c.Approval)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rider %d: %w", id, err)
	}
	return &c, nil
}

// List returns riders ordered by id, optionally filtered by district
// and/or approval status.
func (r *RiderRepo) List(ctx context.Context, f domain.RiderFilter) ([]domain.Rider, error) {
	q := `SELECT id, name, email, district, work_status, approval FROM riders`
	args := make([]any, 0, 2)
	where := ""
	if f.District != nil {
		args = append(args, *f.District)
		where = fmt.Sprintf(" WHERE district=$%d", len(args))
	}
	if f.Approval != nil {
		args = append(args, *f.Approval)
		if where == "" {
			where = fmt.Sprintf(" WHERE approval=$%d", len(args))
		} else {
			where += fmt.Sprintf(" AND approval=$%d", len(args))
		}
	}
	q += where + ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list riders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Rider, 0)
	for rows.Next() {
		var c domain.Rider
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.District, &c.WorkStatus, &c.Approval); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create - creates a new rider.
func (r *RiderRepo) Create(ctx context.Context, c *domain.Rider) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO riders (name, email, district, work_status, approval)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, c.Name, c.Email, c.District, c.WorkStatus, c.Approval).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create rider: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a rider and returns true if a
// row was affected. Work status and approval are deliberately excluded:
// the lifecycle service and Approve are their sole writers.
func (r *RiderRepo) UpdatePartial(ctx context.Context, u domain.PartialRiderUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE riders
        SET
            name       = COALESCE($2, name),
            district   = COALESCE($3, district),
            updated_at = now()
        WHERE id = $1
    `, u.ID, u.Name, u.District)
	if err != nil {
		return false, fmt.Errorf("update rider %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Approve marks the rider approved and promotes the backing user account
// to the rider role, in one transaction. The user row is created if the
// rider registered before ever signing in.
func (r *RiderRepo) Approve(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var email string
	if err = tx.QueryRow(ctx, `
        UPDATE riders
        SET approval = $2, updated_at = now()
        WHERE id = $1
        RETURNING email
    `, id, domain.ApprovalApproved).Scan(&email); err != nil {
		if IsNotFound(err) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("approve rider %d: %w", id, err)
	}

	if _, err = tx.Exec(ctx, `
        INSERT INTO users (email, role)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
    `, email, domain.RoleRider); err != nil {
		return fmt.Errorf("promote user %q: %w", email, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
