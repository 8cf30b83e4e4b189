package parcel

import (
	"context"

	"zapshift/internal/domain"
)

// parcelRepository defines storage operations required by the business layer.
type parcelRepository interface {
	Create(ctx context.Context, p *domain.Parcel) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Parcel, error)
	List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, error)
	Delete(ctx context.Context, id int64) (bool, error)
	StatsByStatus(ctx context.Context) ([]domain.StatusCount, error)
}
