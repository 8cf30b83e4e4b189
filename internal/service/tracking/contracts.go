//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking

package tracking

import (
	"context"

	"zapshift/internal/domain"
)

type ledgerRepository interface {
	Append(ctx context.Context, trackingID, status string) error
	ListByTrackingID(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error)
}

// Publisher mirrors ledger events to a broker topic.
type Publisher interface {
	Publish(topic string, message []byte) error
}

type counter interface {
	Inc()
}
