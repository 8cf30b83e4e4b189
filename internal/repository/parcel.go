package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/domain"
)

const parcelColumns = `id, tracking_id, parcel_name, sender_email, cost,
	delivery_status, payment_status, rider_id, rider_name, rider_email, created_at`

// ParcelRepo represents parcel repository.
type ParcelRepo struct{ db *pgxpool.Pool }

// NewParcelRepo creates a new ParcelRepo.
func NewParcelRepo(db *pgxpool.Pool) *ParcelRepo { return &ParcelRepo{db: db} }

func scanParcel(row pgx.Row) (*domain.Parcel, error) {
	var p domain.Parcel
	err := row.Scan(&p.ID, &p.TrackingID, &p.ParcelName, &p.SenderEmail, &p.Cost,
		&p.DeliveryStatus, &p.PaymentStatus, &p.RiderID, &p.RiderName, &p.RiderEmail, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create - creates a new parcel and returns its generated ID.
func (r *ParcelRepo) Create(ctx context.Context, p *domain.Parcel) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO parcels (tracking_id, parcel_name, sender_email, cost, delivery_status, payment_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, p.TrackingID, p.ParcelName, p.SenderEmail, p.Cost, p.DeliveryStatus, p.PaymentStatus, p.CreatedAt).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, fmt.Errorf("create parcel: tracking id collision: %w", err)
		}
		return 0, fmt.Errorf("create parcel: %w", err)
	}
	return id, nil
}

// Get - returns parcel by its ID, or nil when absent.
func (r *ParcelRepo) Get(ctx context.Context, id int64) (*domain.Parcel, error) {
	p, err := scanParcel(r.db.QueryRow(ctx,
		`SELECT `+parcelColumns+` FROM parcels WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parcel %d: %w", id, err)
	}
	return p, nil
}

// List returns parcels newest first, optionally filtered by sender email
// and/or delivery status.
func (r *ParcelRepo) List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, error) {
	q := `SELECT ` + parcelColumns + ` FROM parcels`
	args := make([]any, 0, 2)
	where := ""
	if f.SenderEmail != nil {
		args = append(args, *f.SenderEmail)
		where = fmt.Sprintf(" WHERE sender_email=$%d", len(args))
	}
	if f.DeliveryStatus != nil {
		args = append(args, *f.DeliveryStatus)
		if where == "" {
			where = fmt.Sprintf(" WHERE delivery_status=$%d", len(args))
		} else {
			where += fmt.Sprintf(" AND delivery_status=$%d", len(args))
		}
	}
	q += where + ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Parcel, 0)
	for rows.Next() {
		p, err := scanParcel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Delete removes a parcel and returns true if a row was affected.
func (r *ParcelRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM parcels WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete parcel %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// StatsByStatus returns parcel counts grouped by delivery status.
func (r *ParcelRepo) StatsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.db.Query(ctx, `
        SELECT delivery_status, COUNT(*)
        FROM parcels
        GROUP BY delivery_status
        ORDER BY delivery_status
    `)
	if err != nil {
		return nil, fmt.Errorf("parcel stats: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StatusCount, 0, 4)
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
