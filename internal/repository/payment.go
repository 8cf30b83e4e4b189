package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"zapshift/internal/domain"
)

// PaymentRepo reads the immutable payment receipts. Writes go through the
// lifecycle transaction only.
type PaymentRepo struct{ db *pgxpool.Pool }

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(db *pgxpool.Pool) *PaymentRepo { return &PaymentRepo{db: db} }

// GetByTransactionID returns the receipt for the external transaction id,
// or nil when the payment has not been reconciled.
func (r *PaymentRepo) GetByTransactionID(ctx context.Context, txID string) (*domain.PaymentReceipt, error) {
	var p domain.PaymentReceipt
	err := r.db.QueryRow(ctx, `
        SELECT id, transaction_id, parcel_id, tracking_id, amount, currency, customer_email, paid_at
        FROM payments
        WHERE transaction_id = $1
    `, txID).Scan(&p.ID, &p.TransactionID, &p.ParcelID, &p.TrackingID, &p.Amount,
		&p.Currency, &p.CustomerEmail, &p.PaidAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt %q: %w", txID, err)
	}
	return &p, nil
}

// ListByCustomer returns a customer's receipts, newest first.
func (r *PaymentRepo) ListByCustomer(ctx context.Context, email string) ([]domain.PaymentReceipt, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, transaction_id, parcel_id, tracking_id, amount, currency, customer_email, paid_at
        FROM payments
        WHERE customer_email = $1
        ORDER BY paid_at DESC, id DESC
    `, email)
	if err != nil {
		return nil, fmt.Errorf("list receipts for %q: %w", email, err)
	}
	defer rows.Close()

	out := make([]domain.PaymentReceipt, 0)
	for rows.Next() {
		var p domain.PaymentReceipt
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.ParcelID, &p.TrackingID, &p.Amount,
			&p.Currency, &p.CustomerEmail, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
