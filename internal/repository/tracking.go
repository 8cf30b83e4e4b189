package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/domain"
)

// TrackingRepo owns the append-only tracking ledger.
type TrackingRepo struct{ db *pgxpool.Pool }

// NewTrackingRepo creates a new TrackingRepo.
func NewTrackingRepo(db *pgxpool.Pool) *TrackingRepo { return &TrackingRepo{db: db} }

// Append inserts one immutable event with a server-assigned timestamp.
func (r *TrackingRepo) Append(ctx context.Context, trackingID, status string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO tracking_events (tracking_id, status, created_at)
        VALUES ($1, $2, $3)
    `, trackingID, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append tracking event %q: %w", trackingID, err)
	}
	return nil
}

// ListByTrackingID returns all events for the tracking id in creation
// order. An unknown id yields an empty slice, not an error.
func (r *TrackingRepo) ListByTrackingID(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, tracking_id, status, created_at
        FROM tracking_events
        WHERE tracking_id = $1
        ORDER BY created_at, id
    `, trackingID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events %q: %w", trackingID, err)
	}
	defer rows.Close()

	out := make([]domain.TrackingEvent, 0)
	for rows.Next() {
		var e domain.TrackingEvent
		if err := rows.Scan(&e.ID, &e.TrackingID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
