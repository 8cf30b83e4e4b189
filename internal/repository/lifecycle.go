package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/ports/lifecycletx"
)

// LifecycleRepo owns the transactional mutation surface used by the parcel
// lifecycle state machine.
type LifecycleRepo struct {
	db *pgxpool.Pool
}

// NewLifecycleRepo creates a new LifecycleRepo.
func NewLifecycleRepo(db *pgxpool.Pool) *LifecycleRepo {
	return &LifecycleRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *LifecycleRepo) WithTx(ctx context.Context, fn func(tx lifecycletx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetParcelForUpdate locks and returns the parcel row, or nil when absent.
func (r *TxRepo) GetParcelForUpdate(ctx context.Context, id int64) (*domain.Parcel, error) {
	p, err := scanParcel(r.tx.QueryRow(ctx,
		`SELECT `+parcelColumns+` FROM parcels WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parcel %d for update: %w", id, err)
	}
	return p, nil
}

// MarkParcelPaid flips the parcel to paid / pending_pickup.
func (r *TxRepo) MarkParcelPaid(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE parcels
        SET payment_status = $2, delivery_status = $3
        WHERE id = $1
    `, id, domain.PaymentPaid, domain.DeliveryPendingPickup)
	if err != nil {
		return fmt.Errorf("mark parcel %d paid: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("parcel %d not found", id)
	}
	return nil
}

// SetParcelRider stores the assigned rider on the parcel and advances it
// to driver_assigned. Rider fields are written exactly once.
func (r *TxRepo) SetParcelRider(ctx context.Context, parcelID int64, rider *domain.Rider) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE parcels
        SET delivery_status = $2, rider_id = $3, rider_name = $4, rider_email = $5
        WHERE id = $1
    `, parcelID, domain.DeliveryDriverAssigned, rider.ID, rider.Name, rider.Email)
	if err != nil {
		return fmt.Errorf("set parcel %d rider: %w", parcelID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("parcel %d not found", parcelID)
	}
	return nil
}

// SetParcelDelivered advances the parcel to its terminal status.
func (r *TxRepo) SetParcelDelivered(ctx context.Context, parcelID int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE parcels
        SET delivery_status = $2
        WHERE id = $1
    `, parcelID, domain.DeliveryParcelDelivered)
	if err != nil {
		return fmt.Errorf("set parcel %d delivered: %w", parcelID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("parcel %d not found", parcelID)
	}
	return nil
}

// GetRider returns the rider, or nil when absent.
func (r *TxRepo) GetRider(ctx context.Context, id int64) (*domain.Rider, error) {
	var c domain.Rider
	err := r.tx.QueryRow(ctx,
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

// ClaimRider flips the rider available → in_delivery only if it is still
// available at write time. Zero rows affected means the claim lost.
func (r *TxRepo) ClaimRider(ctx context.Context, id int64) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE riders
        SET work_status = $2, updated_at = now()
        WHERE id = $1 AND work_status = $3
    `, id, domain.WorkInDelivery, domain.WorkAvailable)
	if err != nil {
		return false, fmt.Errorf("claim rider %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ReleaseRider sets the rider available. Releasing an already-available
// rider is a no-op, not an error.
func (r *TxRepo) ReleaseRider(ctx context.Context, id int64) error {
	_, err := r.tx.Exec(ctx, `
        UPDATE riders
        SET work_status = $2, updated_at = now()
        WHERE id = $1
    `, id, domain.WorkAvailable)
	if err != nil {
		return fmt.Errorf("release rider %d: %w", id, err)
	}
	return nil
}

// InsertReceipt writes the payment receipt. The UNIQUE constraint on
// transaction_id arbitrates concurrent reconciles for the same payment.
func (r *TxRepo) InsertReceipt(ctx context.Context, rcpt *domain.PaymentReceipt) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO payments (transaction_id, parcel_id, tracking_id, amount, currency, customer_email, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, rcpt.TransactionID, rcpt.ParcelID, rcpt.TrackingID, rcpt.Amount, rcpt.Currency,
		rcpt.CustomerEmail, rcpt.PaidAt).Scan(&rcpt.ID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert receipt %s: %w", rcpt.TransactionID, err)
	}
	return nil
}
