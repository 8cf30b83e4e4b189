package domain

import "net/mail"

// List of possible parcel delivery statuses
const (
	DeliveryCreated         DeliveryStatus = "created"
	DeliveryPendingPickup   DeliveryStatus = "pending_pickup"
	DeliveryDriverAssigned  DeliveryStatus = "driver_assigned"
	DeliveryParcelDelivered DeliveryStatus = "parcel_delivered"
)

// List of possible parcel payment statuses
const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// List of possible rider work statuses
const (
	WorkAvailable  WorkStatus = "available"
	WorkInDelivery WorkStatus = "in_delivery"
)

// List of possible rider approval statuses
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// List of possible user roles
const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryCreated, DeliveryPendingPickup, DeliveryDriverAssigned, DeliveryParcelDelivered,
}

var allowedWorkStatuses = [...]WorkStatus{
	WorkAvailable, WorkInDelivery,
}

var allowedApprovalStatuses = [...]ApprovalStatus{
	ApprovalPending, ApprovalApproved, ApprovalRejected,
}

// nextDelivery is the closed transition table for parcel delivery statuses.
// created is the sole initial state, parcel_delivered is terminal.
var nextDelivery = map[DeliveryStatus]DeliveryStatus{
	DeliveryCreated:        DeliveryPendingPickup,
	DeliveryPendingPickup:  DeliveryDriverAssigned,
	DeliveryDriverAssigned: DeliveryParcelDelivered,
}

// Valid checks if the DeliveryStatus is valid.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether target is the legal next status after s.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	return nextDelivery[s] == target
}

// Terminal reports whether the status has no outbound transition.
func (s DeliveryStatus) Terminal() bool {
	_, ok := nextDelivery[s]
	return s.Valid() && !ok
}

// Valid checks if the PaymentStatus is valid.
func (s PaymentStatus) Valid() bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

// Valid checks if the WorkStatus is valid.
func (s WorkStatus) Valid() bool {
	for _, v := range allowedWorkStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the ApprovalStatus is valid.
func (s ApprovalStatus) Valid() bool {
	for _, v := range allowedApprovalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateEmail validates the email address format.
func ValidateEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
