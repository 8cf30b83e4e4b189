package rider

import (
	"context"

	"zapshift/internal/domain"
)

// riderRepository defines storage operations required by the business layer.
type riderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Rider, error)
	List(ctx context.Context, f domain.RiderFilter) ([]domain.Rider, error)
	Create(ctx context.Context, c *domain.Rider) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialRiderUpdate) (bool, error)
	Approve(ctx context.Context, id int64) error
}
