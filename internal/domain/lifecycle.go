package domain

import "time"

// AssignResult - struct representing the result of assigning a rider.
type AssignResult struct {
	ParcelID   int64
	TrackingID string
	RiderID    int64
	RiderName  string
}

// DeliverResult - struct representing the result of confirming delivery.
type DeliverResult struct {
	ParcelID   int64
	TrackingID string
	RiderID    int64
}

// PaymentOutcome is the canonical result of resolving an external
// checkout session.
type PaymentOutcome struct {
	TransactionID string
	Paid          bool
	Amount        int64
	Currency      string
	CustomerEmail string
	ParcelID      int64
	TrackingID    string
	PaidAt        time.Time
}
