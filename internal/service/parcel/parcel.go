package parcel

import (
	"context"
	"strings"
	"time"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/trackid"
)

// Service coordinates parcel business logic and orchestrates repository calls.
type Service struct {
	repo             parcelRepository
	operationTimeout time.Duration
	newTrackingID    func() string
	now              func() time.Time
}

// NewService creates and configures a parcel Service.
func NewService(r parcelRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		newTrackingID:    trackid.New,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(p *domain.Parcel) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(p.ParcelName) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidateEmail(p.SenderEmail) {
		return apperr.ErrInvalid
	}
	if p.Cost <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Create persists a new parcel. The tracking id is generated here, once,
// and the parcel starts in the created/unpaid state.
func (s *Service) Create(ctx context.Context, p *domain.Parcel) (int64, error) {
	if err := validateCreate(p); err != nil {
		return 0, err
	}

	p.TrackingID = s.newTrackingID()
	p.DeliveryStatus = domain.DeliveryCreated
	p.PaymentStatus = domain.PaymentUnpaid
	p.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// Get retrieves a parcel by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Parcel, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// List returns parcels newest first, with optional sender/status filters.
func (s *Service) List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, error) {
	if f.DeliveryStatus != nil && !f.DeliveryStatus.Valid() {
		return nil, apperr.ErrInvalid
	}
	if f.SenderEmail != nil && !domain.ValidateEmail(*f.SenderEmail) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Delete removes a parcel.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Stats returns parcel counts grouped by delivery status.
func (s *Service) Stats(ctx context.Context) ([]domain.StatusCount, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.StatsByStatus(ctx)
}
