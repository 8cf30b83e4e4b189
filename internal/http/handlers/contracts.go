package handlers

import (
	"context"

	"zapshift/internal/domain"
	"zapshift/internal/service/lifecycle"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/payment"
	"zapshift/internal/service/rider"
	"zapshift/internal/service/tracking"
)

type parcelUsecase interface {
	Create(ctx context.Context, p *domain.Parcel) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Parcel, error)
	List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) ([]domain.StatusCount, error)
}

// NewParcelUsecase wires a parcel Service into a parcelUsecase.
func NewParcelUsecase(svc *parcel.Service) parcelUsecase {
	return svc
}

type lifecycleUsecase interface {
	AssignRider(ctx context.Context, parcelID, riderID int64) (domain.AssignResult, error)
	ConfirmDelivered(ctx context.Context, parcelID, riderID int64) (domain.DeliverResult, error)
	UpdateStatus(ctx context.Context, parcelID int64, target domain.DeliveryStatus, params lifecycle.StatusParams) error
}

// NewLifecycleUsecase wires a lifecycle Service into a lifecycleUsecase.
func NewLifecycleUsecase(svc *lifecycle.Service) lifecycleUsecase {
	return svc
}

type paymentUsecase interface {
	CreateSession(ctx context.Context, parcelID int64) (payment.SessionURL, error)
	Reconcile(ctx context.Context, sessionRef string) (payment.Result, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.PaymentReceipt, error)
}

// NewPaymentUsecase wires a payment Engine into a paymentUsecase.
func NewPaymentUsecase(e *payment.Engine) paymentUsecase {
	return e
}

type riderUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Rider, error)
	List(ctx context.Context, f domain.RiderFilter) ([]domain.Rider, error)
	Create(ctx context.Context, c *domain.Rider) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialRiderUpdate) (bool, error)
	Approve(ctx context.Context, id int64) error
}

// NewRiderUsecase wires a rider Service into a riderUsecase.
func NewRiderUsecase(svc *rider.Service) riderUsecase {
	return svc
}

type trackingUsecase interface {
	Log(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error)
}

// NewTrackingUsecase wires a tracking Recorder into a trackingUsecase.
func NewTrackingUsecase(rec *tracking.Recorder) trackingUsecase {
	return rec
}
