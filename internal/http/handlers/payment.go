package handlers

import (
	"errors"
	"net/http"

	"zapshift/internal/apperr"
	"zapshift/internal/http/middleware"
	"zapshift/internal/logx"
)

// PaymentHandler serves checkout and reconciliation endpoints.
type PaymentHandler struct {
	uc     paymentUsecase
	logger logx.Logger
}

// NewPaymentHandler wires a paymentUsecase into HTTP handlers.
func NewPaymentHandler(logger logx.Logger, uc paymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// CreateSession handles POST /payments/checkout-session.
func (h *PaymentHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.CreateSession(r.Context(), req.ParcelID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, sessionResponse{URL: res.URL})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "parcel not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "parcel already paid")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Reconcile handles POST /payments/reconcile?session_id=...
// Replays of an already-reconciled session return the original result.
func (h *PaymentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	sessionRef := r.URL.Query().Get("session_id")

	res, err := h.uc.Reconcile(r.Context(), sessionRef)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, reconcileResponse{
			Success:       res.Success,
			TrackingID:    res.TrackingID,
			TransactionID: res.TransactionID,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "missing session_id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "unknown session")
	case errors.Is(err, apperr.ErrTransition):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "illegal transition")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /payments?email=... Only the owner's receipts are
// visible: the filter email must match the verified identity.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		email = middleware.VerifiedEmail(r.Context())
	}
	if email != middleware.VerifiedEmail(r.Context()) {
		writeError(h.logger, w, r, http.StatusForbidden, "forbidden")
		return
	}

	list, err := h.uc.ListByCustomer(r.Context(), email)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toReceiptDTOs(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid email")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
