package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

// Recorder appends status-change events to the tracking ledger.
//
// Appends are best-effort by policy: a missing audit entry is a degraded
// but survivable outcome, so Record never fails its caller. Failures are
// logged and counted instead.
type Recorder struct {
	repo      ledgerRepository
	publisher Publisher
	topic     string
	logger    logx.Logger
	failures  counter
}

// NewRecorder creates a Recorder. publisher may be nil; the kafka mirror
// is then skipped.
func NewRecorder(repo ledgerRepository, publisher Publisher, topic string, logger logx.Logger, failures counter) *Recorder {
	return &Recorder{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		failures:  failures,
	}
}

type eventMessage struct {
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record appends one ledger event. It never returns an error: callers must
// not block primary state mutation on ledger success.
func (s *Recorder) Record(ctx context.Context, trackingID, status string) {
	// The primary mutation already committed; a canceled request context
	// must not suppress the audit write.
	ctx = context.WithoutCancel(ctx)

	if err := s.repo.Append(ctx, trackingID, status); err != nil {
		if s.failures != nil {
			s.failures.Inc()
		}
		s.logger.Error("tracking ledger append failed",
			logx.String("tracking_id", trackingID),
			logx.String("status", status),
			logx.Err(err),
		)
	}

	if s.publisher == nil || s.topic == "" {
		return
	}
	msg, err := json.Marshal(eventMessage{
		TrackingID: trackingID,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.logger.Warn("tracking event publish failed",
			logx.String("tracking_id", trackingID),
			logx.Err(err),
		)
	}
}

// Log returns the ordered audit trail for a tracking id. An unknown id
// yields an empty trail.
func (s *Recorder) Log(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, fmt.Errorf("%w: empty tracking id", apperr.ErrInvalid)
	}
	return s.repo.ListByTrackingID(ctx, trackingID)
}
