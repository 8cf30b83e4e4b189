package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/testutil"
)

type stubLedgerRepo struct {
	appendFn func(context.Context, string, string) error
	listFn   func(context.Context, string) ([]domain.TrackingEvent, error)
}

func (s *stubLedgerRepo) Append(ctx context.Context, trackingID, status string) error {
	if s.appendFn == nil {
		return nil
	}
	return s.appendFn(ctx, trackingID, status)
}

func (s *stubLedgerRepo) ListByTrackingID(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, trackingID)
}

type stubPublisher struct {
	topic string
	msgs  [][]byte
	err   error
}

func (s *stubPublisher) Publish(topic string, message []byte) error {
	if s.err != nil {
		return s.err
	}
	s.topic = topic
	s.msgs = append(s.msgs, message)
	return nil
}

type countingCounter struct{ n int }

func (c *countingCounter) Inc() { c.n++ }

func TestRecorder_Record_AppendsAndMirrors(t *testing.T) {
	t.Parallel()

	var gotID, gotStatus string
	repo := &stubLedgerRepo{
		appendFn: func(_ context.Context, trackingID, status string) error {
			gotID, gotStatus = trackingID, status
			return nil
		},
	}
	pub := &stubPublisher{}
	rec := NewRecorder(repo, pub, "parcel.tracking.events", testlog.New().Logger(), nil)

	rec.Record(context.Background(), "PRCL-20260301-AB12CD", domain.EventPendingPickup)

	require.Equal(t, "PRCL-20260301-AB12CD", gotID)
	require.Equal(t, domain.EventPendingPickup, gotStatus)
	require.Equal(t, "parcel.tracking.events", pub.topic)
	require.Len(t, pub.msgs, 1)

	var msg eventMessage
	require.NoError(t, json.Unmarshal(pub.msgs[0], &msg))
	require.Equal(t, "PRCL-20260301-AB12CD", msg.TrackingID)
	require.Equal(t, domain.EventPendingPickup, msg.Status)
}

func TestRecorder_Record_AppendFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	repo := &stubLedgerRepo{
		appendFn: func(context.Context, string, string) error {
			return errors.New("ledger down")
		},
	}
	logs := testlog.New()
	failures := &countingCounter{}
	rec := NewRecorder(repo, nil, "", logs.Logger(), failures)

	// must not panic and must not surface the error to the caller
	rec.Record(context.Background(), "PRCL-20260301-AB12CD", domain.EventDriverAssigned)

	require.Equal(t, 1, failures.n)
	entries := logs.Entries()
	require.NotEmpty(t, entries)
	require.Equal(t, "error", entries[0].Level)
}

func TestRecorder_Record_SurvivesCanceledContext(t *testing.T) {
	t.Parallel()

	appended := false
	repo := &stubLedgerRepo{
		appendFn: func(ctx context.Context, _, _ string) error {
			require.NoError(t, ctx.Err())
			appended = true
			return nil
		},
	}
	rec := NewRecorder(repo, nil, "", testlog.New().Logger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec.Record(ctx, "PRCL-20260301-AB12CD", domain.EventParcelDelivered)

	require.True(t, appended)
}

func TestRecorder_Record_PublishFailureOnlyLogged(t *testing.T) {
	t.Parallel()

	pub := &stubPublisher{err: errors.New("broker down")}
	logs := testlog.New()
	rec := NewRecorder(&stubLedgerRepo{}, pub, "parcel.tracking.events", logs.Logger(), nil)

	rec.Record(context.Background(), "PRCL-20260301-AB12CD", domain.EventPendingPickup)

	entries := logs.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "warn", entries[0].Level)
}

func TestRecorder_Log(t *testing.T) {
	t.Parallel()

	events := []domain.TrackingEvent{
		{ID: 1, TrackingID: "PRCL-20260301-AB12CD", Status: domain.EventPendingPickup, CreatedAt: time.Now().UTC()},
		{ID: 2, TrackingID: "PRCL-20260301-AB12CD", Status: domain.EventDriverAssigned, CreatedAt: time.Now().UTC()},
	}
	repo := &stubLedgerRepo{
		listFn: func(_ context.Context, trackingID string) ([]domain.TrackingEvent, error) {
			require.Equal(t, "PRCL-20260301-AB12CD", trackingID)
			return events, nil
		},
	}
	rec := NewRecorder(repo, nil, "", testlog.New().Logger(), nil)

	out, err := rec.Log(context.Background(), "  PRCL-20260301-AB12CD ")
	require.NoError(t, err)
	require.Equal(t, events, out)

	_, err = rec.Log(context.Background(), "   ")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}
