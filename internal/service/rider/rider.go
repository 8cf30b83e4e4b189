package rider

import (
	"context"
	"strings"
	"time"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

// Service coordinates rider business logic and orchestrates repository calls.
// Work status is deliberately out of its reach: the parcel lifecycle is the
// sole writer of that field.
type Service struct {
	repo             riderRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a rider Service.
func NewService(r riderRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(c *domain.Rider) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidateEmail(c.Email) {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.District) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialRiderUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.District == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.District != nil && strings.TrimSpace(*u.District) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a rider by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Rider, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns riders with optional district/approval filters.
func (s *Service) List(ctx context.Context, f domain.RiderFilter) ([]domain.Rider, error) {
	if f.Approval != nil && !f.Approval.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Create registers a new rider, available and pending approval.
func (s *Service) Create(ctx context.Context, c *domain.Rider) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	c.WorkStatus = domain.WorkAvailable
	c.Approval = domain.ApprovalPending

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

// UpdatePartial applies a partial update to a rider.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialRiderUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

// Approve marks the rider approved and promotes their user account to the
// rider role. The promotion is a cross-entity side effect of this admin
// transition only; assignment and release never touch roles.
func (s *Service) Approve(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Approve(ctx, id); err != nil {
		return err
	}
	s.logger.Info("rider approved",
		logx.String("event", "rider_approved"),
		logx.Int64("rider_id", id),
	)
	return nil
}
