//go:generate mockgen -source=contracts.go -destination=lifecycle_mocks_test.go -package=lifecycle

package lifecycle

import (
	"context"

	"zapshift/internal/ports/lifecycletx"
)

type lifecycleRepository interface {
	WithTx(ctx context.Context, fn func(tx lifecycletx.Repository) error) error
}

// Ledger records status-change events. Implementations must be
// best-effort: Record never fails the caller.
type Ledger interface {
	Record(ctx context.Context, trackingID, status string)
}
