package domain

import "time"

// Ledger event descriptions, one per lifecycle transition.
const (
	EventPendingPickup   = "PendingPickup"
	EventDriverAssigned  = "DriverAssigned"
	EventParcelDelivered = "ParcelDelivered"
)

// TrackingEvent is one append-only ledger entry. Events are never updated
// or deleted; the ordered sequence for a tracking id is the audit trail.
type TrackingEvent struct {
	ID         int64
	TrackingID string
	Status     string
	CreatedAt  time.Time
}
