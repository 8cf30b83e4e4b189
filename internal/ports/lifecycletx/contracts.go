package lifecycletx

import (
	"context"

	"zapshift/internal/domain"
)

// Repository is the paired parcel/rider/receipt mutation surface available
// inside one lifecycle transaction. The lifecycle service is the only caller.
type Repository interface {
	GetParcelForUpdate(ctx context.Context, id int64) (*domain.Parcel, error)
	MarkParcelPaid(ctx context.Context, id int64) error
	SetParcelRider(ctx context.Context, parcelID int64, r *domain.Rider) error
	SetParcelDelivered(ctx context.Context, parcelID int64) error
	GetRider(ctx context.Context, id int64) (*domain.Rider, error)
	// ClaimRider is a compare-and-set: available → in_delivery. It returns
	// false without error when the rider was not available at write time.
	ClaimRider(ctx context.Context, id int64) (bool, error)
	// ReleaseRider sets the rider available. Idempotent.
	ReleaseRider(ctx context.Context, id int64) error
	InsertReceipt(ctx context.Context, rcpt *domain.PaymentReceipt) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
