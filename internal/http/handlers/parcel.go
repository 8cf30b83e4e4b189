package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

// ParcelHandler serves HTTP endpoints for parcel resources.
type ParcelHandler struct {
	uc     parcelUsecase
	logger logx.Logger
}

// NewParcelHandler wires a parcelUsecase into HTTP handlers.
func NewParcelHandler(logger logx.Logger, uc parcelUsecase) *ParcelHandler {
	return &ParcelHandler{uc: uc, logger: logger}
}

// Create handles POST /parcels.
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createParcelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p := domain.Parcel{
		ParcelName:  req.ParcelName,
		SenderEmail: req.SenderEmail,
		Cost:        req.Cost,
	}
	id, err := h.uc.Create(r.Context(), &p)
	switch {
	case err == nil:
		w.Header().Set("Location", "/parcels/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, toParcelDTO(&p))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /parcels/{id}.
func (h *ParcelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toParcelDTO(p))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /parcels with optional email and status filters.
func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f domain.ParcelFilter
	if s := q.Get("email"); s != "" {
		f.SenderEmail = &s
	}
	if s := q.Get("status"); s != "" {
		st := domain.DeliveryStatus(s)
		f.DeliveryStatus = &st
	}

	list, err := h.uc.List(r.Context(), f)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toParcelDTOs(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid filter")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /parcels/{id}.
func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.uc.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "deleted"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Stats handles GET /parcels/stats.
func (h *ParcelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toStatusCountDTOs(stats))
}
