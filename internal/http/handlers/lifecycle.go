package handlers

import (
	"errors"
	"net/http"

	"zapshift/internal/apperr"
	"zapshift/internal/logx"
	"zapshift/internal/service/lifecycle"
)

// LifecycleHandler serves the parcel status-transition endpoints.
type LifecycleHandler struct {
	uc     lifecycleUsecase
	logger logx.Logger
}

// NewLifecycleHandler wires a lifecycleUsecase into HTTP handlers.
func NewLifecycleHandler(logger logx.Logger, uc lifecycleUsecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc, logger: logger}
}

// Assign handles POST /parcels/{id}/assign.
func (h *LifecycleHandler) Assign(w http.ResponseWriter, r *http.Request) {
	parcelID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignRiderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.AssignRider(r.Context(), parcelID, req.RiderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
			"parcel_id":   res.ParcelID,
			"tracking_id": res.TrackingID,
			"rider_id":    res.RiderID,
			"rider_name":  res.RiderName,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrTransition):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "illegal transition")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles PATCH /parcels/{id}/status. The target status is
// explicit, but the transition's side effects still apply: this is never
// a bare field write.
func (h *LifecycleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	parcelID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.uc.UpdateStatus(r.Context(), parcelID, req.DeliveryStatus, lifecycle.StatusParams{
		RiderID: req.RiderID,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrTransition):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "illegal transition")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Deliver handles POST /parcels/{id}/deliver.
func (h *LifecycleHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	parcelID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignRiderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.ConfirmDelivered(r.Context(), parcelID, req.RiderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
			"parcel_id":   res.ParcelID,
			"tracking_id": res.TrackingID,
			"rider_id":    res.RiderID,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrTransition):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "illegal transition")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
