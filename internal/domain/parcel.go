package domain

import "time"

type (
	// DeliveryStatus represents the delivery state of a parcel.
	DeliveryStatus string
	// PaymentStatus represents the payment state of a parcel.
	PaymentStatus string
)

// Parcel represents a shipment created by a sender.
// TrackingID is assigned once at creation and never regenerated.
// Rider fields are set exactly once, on assignment.
type Parcel struct {
	ID             int64
	TrackingID     string
	ParcelName     string
	SenderEmail    string
	Cost           int64 // minor currency units
	DeliveryStatus DeliveryStatus
	PaymentStatus  PaymentStatus
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	CreatedAt      time.Time
}

// Assigned reports whether a rider has been set on the parcel.
func (p *Parcel) Assigned() bool {
	return p.RiderID != nil
}

// ParcelFilter carries optional list filters. A nil field means "no filter".
type ParcelFilter struct {
	SenderEmail    *string
	DeliveryStatus *DeliveryStatus
}

// StatusCount is one row of the grouped delivery-status aggregation.
type StatusCount struct {
	Status DeliveryStatus
	Count  int64
}
