// Package lifecycle is the authority for parcel delivery-status
// transitions. It is the sole writer of delivery_status and work_status:
// every transition runs here, with its side effects, inside one
// transaction, and nothing else mutates those fields.
package lifecycle

import (
	"context"
	"time"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
	"zapshift/internal/ports/lifecycletx"
)

// Service drives the parcel lifecycle state machine.
type Service struct {
	repo             lifecycleRepository
	ledger           Ledger
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a lifecycle Service.
func NewService(repo lifecycleRepository, ledger Ledger, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		ledger:           ledger,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// MarkPaid drives the created → pending_pickup transition and writes the
// payment receipt in the same transaction. The receipt insert runs after
// the parcel update, so a stored receipt is always a true signal that the
// parcel advanced. A concurrent reconcile of the same transaction id
// surfaces to callers as apperr.ErrTransition (the loser re-reads the
// parcel already paid under the row lock) or, rarely, apperr.ErrConflict
// from the receipt's unique index.
func (s *Service) MarkPaid(ctx context.Context, out domain.PaymentOutcome) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trackingID string
	err := s.repo.WithTx(ctx, func(tx lifecycletx.Repository) error {
		p, err := tx.GetParcelForUpdate(ctx, out.ParcelID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.ErrNotFound
		}
		if p.PaymentStatus != domain.PaymentUnpaid {
			return apperr.ErrTransition
		}

		if err := tx.MarkParcelPaid(ctx, p.ID); err != nil {
			return err
		}
		if err := tx.InsertReceipt(ctx, &domain.PaymentReceipt{
			TransactionID: out.TransactionID,
			ParcelID:      p.ID,
			TrackingID:    p.TrackingID,
			Amount:        out.Amount,
			Currency:      out.Currency,
			CustomerEmail: out.CustomerEmail,
			PaidAt:        out.PaidAt,
		}); err != nil {
			return err
		}

		trackingID = p.TrackingID
		return nil
	})
	if err != nil {
		return "", err
	}

	s.ledger.Record(ctx, trackingID, domain.EventPendingPickup)

	s.logger.Info("payment confirmed",
		logx.String("event", "parcel_paid"),
		logx.Int64("parcel_id", out.ParcelID),
		logx.String("tracking_id", trackingID),
		logx.String("transaction_id", out.TransactionID),
	)
	return trackingID, nil
}

// AssignRider drives the pending_pickup → driver_assigned transition.
// The rider claim is a compare-and-set on work_status, so two concurrent
// assignments of the same rider cannot both succeed.
func (s *Service) AssignRider(ctx context.Context, parcelID, riderID int64) (domain.AssignResult, error) {
	if parcelID <= 0 || riderID <= 0 {
		return domain.AssignResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.AssignResult
	err := s.repo.WithTx(ctx, func(tx lifecycletx.Repository) error {
		p, err := tx.GetParcelForUpdate(ctx, parcelID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.ErrNotFound
		}
		if p.DeliveryStatus != domain.DeliveryPendingPickup {
			return apperr.ErrTransition
		}

		rider, err := tx.GetRider(ctx, riderID)
		if err != nil {
			return err
		}
		if rider == nil {
			return apperr.ErrNotFound
		}
		if rider.Approval != domain.ApprovalApproved {
			return apperr.ErrTransition
		}

		claimed, err := tx.ClaimRider(ctx, rider.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return apperr.ErrTransition
		}

		if err := tx.SetParcelRider(ctx, p.ID, rider); err != nil {
			return err
		}

		result = domain.AssignResult{
			ParcelID:   p.ID,
			TrackingID: p.TrackingID,
			RiderID:    rider.ID,
			RiderName:  rider.Name,
		}
		return nil
	})
	if err != nil {
		return domain.AssignResult{}, err
	}

	s.ledger.Record(ctx, result.TrackingID, domain.EventDriverAssigned)

	s.logger.Info("rider assigned",
		logx.String("event", "rider_assigned"),
		logx.Int64("parcel_id", result.ParcelID),
		logx.Int64("rider_id", result.RiderID),
		logx.String("tracking_id", result.TrackingID),
	)
	return result, nil
}

// ConfirmDelivered drives the driver_assigned → parcel_delivered
// transition and releases the rider. Only the parcel's own rider may
// confirm.
func (s *Service) ConfirmDelivered(ctx context.Context, parcelID, riderID int64) (domain.DeliverResult, error) {
	if parcelID <= 0 || riderID <= 0 {
		return domain.DeliverResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.DeliverResult
	err := s.repo.WithTx(ctx, func(tx lifecycletx.Repository) error {
		p, err := tx.GetParcelForUpdate(ctx, parcelID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.ErrNotFound
		}
		if p.DeliveryStatus != domain.DeliveryDriverAssigned {
			return apperr.ErrTransition
		}
		if p.RiderID == nil || *p.RiderID != riderID {
			return apperr.ErrTransition
		}

		if err := tx.SetParcelDelivered(ctx, p.ID); err != nil {
			return err
		}
		if err := tx.ReleaseRider(ctx, riderID); err != nil {
			return err
		}

		result = domain.DeliverResult{
			ParcelID:   p.ID,
			TrackingID: p.TrackingID,
			RiderID:    riderID,
		}
		return nil
	})
	if err != nil {
		return domain.DeliverResult{}, err
	}

	s.ledger.Record(ctx, result.TrackingID, domain.EventParcelDelivered)

	s.logger.Info("delivery confirmed",
		logx.String("event", "parcel_delivered"),
		logx.Int64("parcel_id", result.ParcelID),
		logx.Int64("rider_id", result.RiderID),
		logx.String("tracking_id", result.TrackingID),
	)
	return result, nil
}

// StatusParams carries the extra inputs an explicit status update may need.
type StatusParams struct {
	RiderID *int64
}

// UpdateStatus is the explicit-status entry point. A target status is
// never a bare field write: it dispatches to the matching transition so
// the paired side effects always apply. pending_pickup is reachable only
// through payment reconciliation.
func (s *Service) UpdateStatus(ctx context.Context, parcelID int64, target domain.DeliveryStatus, params StatusParams) error {
	if !target.Valid() {
		return apperr.ErrInvalid
	}

	switch target {
	case domain.DeliveryDriverAssigned:
		if params.RiderID == nil {
			return apperr.ErrInvalid
		}
		_, err := s.AssignRider(ctx, parcelID, *params.RiderID)
		return err
	case domain.DeliveryParcelDelivered:
		if params.RiderID == nil {
			return apperr.ErrInvalid
		}
		_, err := s.ConfirmDelivered(ctx, parcelID, *params.RiderID)
		return err
	default:
		return apperr.ErrTransition
	}
}
