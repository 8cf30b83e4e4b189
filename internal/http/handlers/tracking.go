package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zapshift/internal/apperr"
	"zapshift/internal/logx"
)

// TrackingHandler serves the public tracking timeline.
type TrackingHandler struct {
	uc     trackingUsecase
	logger logx.Logger
}

func NewTrackingHandler(logger logx.Logger, uc trackingUsecase) *TrackingHandler {
	return &TrackingHandler{uc: uc, logger: logger}
}

// Log handles GET /tracking/{trackingId}.
func (h *TrackingHandler) Log(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")
	if trackingID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing tracking id")
		return
	}

	events, err := h.uc.Log(r.Context(), trackingID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toTrackingEventDTOs(events))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid tracking id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
