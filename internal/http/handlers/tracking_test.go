package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

type stubTrackingUsecase struct {
	logFn func(context.Context, string) ([]domain.TrackingEvent, error)
}

func (s *stubTrackingUsecase) Log(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error) {
	if s.logFn == nil {
		panic("Log not expected in this test")
	}
	return s.logFn(ctx, trackingID)
}

func TestTrackingHandler_Log(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		uc := &stubTrackingUsecase{
			logFn: func(_ context.Context, trackingID string) ([]domain.TrackingEvent, error) {
				assert.Equal(t, "PRCL-20260301-A1B2C3", trackingID)
				return []domain.TrackingEvent{
					{TrackingID: trackingID, Status: "PendingPickup", CreatedAt: at},
					{TrackingID: trackingID, Status: "DriverAssigned", CreatedAt: at.Add(time.Hour)},
				}, nil
			},
		}
		h := NewTrackingHandler(logx.Nop(), uc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/tracking/PRCL-20260301-A1B2C3", nil), "trackingId", "PRCL-20260301-A1B2C3")
		rr := httptest.NewRecorder()
		h.Log(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[
			{"tracking_id": "PRCL-20260301-A1B2C3", "status": "PendingPickup", "created_at": "2026-03-01T10:00:00Z"},
			{"tracking_id": "PRCL-20260301-A1B2C3", "status": "DriverAssigned", "created_at": "2026-03-01T11:00:00Z"}
		]`, rr.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		uc := &stubTrackingUsecase{
			logFn: func(context.Context, string) ([]domain.TrackingEvent, error) {
				return nil, apperr.ErrNotFound
			},
		}
		h := NewTrackingHandler(logx.Nop(), uc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/tracking/PRCL-20260301-FFFFFF", nil), "trackingId", "PRCL-20260301-FFFFFF")
		rr := httptest.NewRecorder()
		h.Log(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing param", func(t *testing.T) {
		t.Parallel()

		h := NewTrackingHandler(logx.Nop(), &stubTrackingUsecase{})

		req := httptest.NewRequest(http.MethodGet, "/tracking/", nil)
		rr := httptest.NewRecorder()
		h.Log(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
