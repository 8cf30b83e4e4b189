package payment

import (
	"context"

	"zapshift/internal/domain"
	"zapshift/internal/gateway/checkout"
)

type checkoutGateway interface {
	CreateSession(ctx context.Context, p checkout.CreateSessionParams) (*checkout.Session, error)
	RetrieveSession(ctx context.Context, ref string) (*checkout.Session, error)
}

type receiptRepository interface {
	GetByTransactionID(ctx context.Context, txID string) (*domain.PaymentReceipt, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.PaymentReceipt, error)
}

type parcelReader interface {
	Get(ctx context.Context, id int64) (*domain.Parcel, error)
}

type lifecyclePort interface {
	MarkPaid(ctx context.Context, out domain.PaymentOutcome) (string, error)
}

type counter interface {
	Inc()
}
