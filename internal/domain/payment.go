package domain

import "time"

// PaymentReceipt is the immutable record of one confirmed payment.
// TransactionID is the external provider's id and the idempotency key:
// at most one receipt per TransactionID, ever.
type PaymentReceipt struct {
	ID            int64
	TransactionID string
	ParcelID      int64
	TrackingID    string
	Amount        int64 // minor currency units
	Currency      string
	CustomerEmail string
	PaidAt        time.Time
}
