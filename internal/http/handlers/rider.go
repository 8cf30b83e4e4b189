package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/logx"
)

// RiderHandler serves HTTP endpoints for rider resources.
type RiderHandler struct {
	uc     riderUsecase
	logger logx.Logger
}

// NewRiderHandler wires a riderUsecase into HTTP handlers.
func NewRiderHandler(logger logx.Logger, uc riderUsecase) *RiderHandler {
	return &RiderHandler{uc: uc, logger: logger}
}

// GetByID handles GET /riders/{id}.
func (h *RiderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toRiderDTO(c))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /riders with optional district and approval filters.
func (h *RiderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f domain.RiderFilter
	if s := q.Get("district"); s != "" {
		f.District = &s
	}
	if s := q.Get("approval"); s != "" {
		ap := domain.ApprovalStatus(s)
		f.Approval = &ap
	}

	list, err := h.uc.List(r.Context(), f)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toRiderDTOs(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid filter")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Create handles POST /riders.
func (h *RiderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRiderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	c := domain.Rider{
		Name:     req.Name,
		Email:    req.Email,
		District: req.District,
	}
	id, err := h.uc.Create(r.Context(), &c)
	switch {
	case err == nil:
		w.Header().Set("Location", "/riders/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "email already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PATCH /riders with partial updates from the request body.
func (h *RiderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRiderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), domain.PartialRiderUpdate{
		ID:       req.ID,
		Name:     req.Name,
		District: req.District,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Approve handles POST /riders/{id}/approve.
func (h *RiderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.uc.Approve(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "approved"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
