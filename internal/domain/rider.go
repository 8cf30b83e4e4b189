package domain

type (
	// WorkStatus represents the work availability of a rider.
	WorkStatus string
	// ApprovalStatus represents the admin-controlled approval state of a rider.
	ApprovalStatus string
	// Role represents a user role.
	Role string
)

// Rider represents a delivery rider. WorkStatus and ApprovalStatus are
// independent axes: approval is admin-controlled, work status is written
// only by the parcel lifecycle.
type Rider struct {
	ID         int64
	Name       string
	Email      string
	District   string
	WorkStatus WorkStatus
	Approval   ApprovalStatus
}

// PartialRiderUpdate carries optional fields to update a rider.
// A nil field means "do not change" that attribute.
type PartialRiderUpdate struct {
	ID       int64
	Name     *string
	District *string
}

// RiderFilter carries optional list filters. A nil field means "no filter".
type RiderFilter struct {
	District *string
	Approval *ApprovalStatus
}

// User is the account a sender or rider authenticates as.
type User struct {
	ID    int64
	Email string
	Role  Role
}
