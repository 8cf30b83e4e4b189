package handlers

import (
	"time"

	"zapshift/internal/domain"
)

type parcelDTO struct {
	ID             int64                 `json:"id"`
	TrackingID     string                `json:"tracking_id"`
	ParcelName     string                `json:"parcel_name"`
	SenderEmail    string                `json:"sender_email"`
	Cost           int64                 `json:"cost"`
	DeliveryStatus domain.DeliveryStatus `json:"delivery_status"`
	PaymentStatus  domain.PaymentStatus  `json:"payment_status"`
	RiderID        *int64                `json:"rider_id,omitempty"`
	RiderName      *string               `json:"rider_name,omitempty"`
	RiderEmail     *string               `json:"rider_email,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

type createParcelRequest struct {
	ParcelName  string `json:"parcel_name"`
	SenderEmail string `json:"sender_email"`
	Cost        int64  `json:"cost"`
}

type updateStatusRequest struct {
	DeliveryStatus domain.DeliveryStatus `json:"delivery_status"`
	RiderID        *int64                `json:"rider_id,omitempty"`
}

type assignRiderRequest struct {
	RiderID int64 `json:"rider_id"`
}

type statusCountDTO struct {
	Status domain.DeliveryStatus `json:"status"`
	Count  int64                 `json:"count"`
}

type riderDTO struct {
	ID         int64                 `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	District   string                `json:"district"`
	WorkStatus domain.WorkStatus     `json:"work_status"`
	Approval   domain.ApprovalStatus `json:"approval"`
}

type createRiderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

type updateRiderRequest struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	District *string `json:"district,omitempty"`
}

type receiptDTO struct {
	TransactionID string    `json:"transaction_id"`
	ParcelID      int64     `json:"parcel_id"`
	TrackingID    string    `json:"tracking_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email"`
	PaidAt        time.Time `json:"paid_at"`
}

type createSessionRequest struct {
	ParcelID int64 `json:"parcel_id"`
}

type sessionResponse struct {
	URL string `json:"url"`
}

type reconcileResponse struct {
	Success       bool   `json:"success"`
	TrackingID    string `json:"tracking_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type trackingEventDTO struct {
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
