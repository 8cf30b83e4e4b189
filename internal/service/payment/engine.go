// Package payment is the reconciliation engine: it resolves external
// checkout sessions to canonical outcomes and applies each paid outcome
// to the parcel exactly once.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
	"zapshift/internal/gateway/checkout"
	"zapshift/internal/logx"
)

const defaultCurrency = "usd"

// Engine reconciles checkout sessions against parcel state.
type Engine struct {
	gateway          checkoutGateway
	receipts         receiptRepository
	parcels          parcelReader
	lifecycle        lifecyclePort
	siteDomain       string
	operationTimeout time.Duration
	logger           logx.Logger
	replays          counter
	now              func() time.Time
}

// NewEngine creates a reconciliation Engine.
func NewEngine(
	gw checkoutGateway,
	receipts receiptRepository,
	parcels parcelReader,
	lc lifecyclePort,
	siteDomain string,
	timeout time.Duration,
	logger logx.Logger,
	replays counter,
) *Engine {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Engine{
		gateway:          gw,
		receipts:         receipts,
		parcels:          parcels,
		lifecycle:        lc,
		siteDomain:       siteDomain,
		operationTimeout: timeout,
		logger:           logger,
		replays:          replays,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// SessionURL is the hosted checkout page to redirect the sender to.
type SessionURL struct {
	URL string
}

// CreateSession opens a checkout session for an unpaid parcel. The parcel
// and tracking ids ride along in the session metadata so reconciliation
// can tie the provider's confirmation back to the parcel.
func (e *Engine) CreateSession(ctx context.Context, parcelID int64) (SessionURL, error) {
	if parcelID <= 0 {
		return SessionURL{}, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, e.operationTimeout)
	defer cancel()

	p, err := e.parcels.Get(ctx, parcelID)
	if err != nil {
		return SessionURL{}, err
	}
	if p == nil {
		return SessionURL{}, apperr.ErrNotFound
	}
	if p.PaymentStatus == domain.PaymentPaid {
		return SessionURL{}, apperr.ErrConflict
	}
	if p.Cost <= 0 {
		return SessionURL{}, apperr.ErrInvalid
	}

	sess, err := e.gateway.CreateSession(ctx, checkout.CreateSessionParams{
		Amount:        p.Cost,
		Currency:      defaultCurrency,
		ProductName:   p.ParcelName,
		CustomerEmail: p.SenderEmail,
		Metadata: map[string]string{
			"parcelId":   strconv.FormatInt(p.ID, 10),
			"trackingId": p.TrackingID,
		},
		SuccessURL: e.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  e.siteDomain + "/dashboard/payment-cancelled",
	})
	if err != nil {
		return SessionURL{}, fmt.Errorf("create checkout session: %w", err)
	}
	return SessionURL{URL: sess.URL}, nil
}

// Result is the reconciliation outcome returned to the caller, identical
// for the first application and every replay.
type Result struct {
	Success       bool
	TrackingID    string
	TransactionID string
}

// Reconcile resolves a session reference and applies a paid outcome at
// most once. It is safe to invoke any number of times, sequentially or
// concurrently, for the same session.
func (e *Engine) Reconcile(ctx context.Context, sessionRef string) (Result, error) {
	sessionRef = strings.TrimSpace(sessionRef)
	if sessionRef == "" {
		return Result{}, apperr.ErrInvalid
	}

	sess, err := e.gateway.RetrieveSession(ctx, sessionRef)
	if err != nil {
		return Result{}, fmt.Errorf("resolve session %q: %w", sessionRef, err)
	}
	if sess == nil {
		return Result{}, apperr.ErrNotFound
	}
	if !sess.Paid() {
		return Result{Success: false}, nil
	}

	out, err := outcomeFromSession(sess)
	if err != nil {
		return Result{}, err
	}

	// Idempotency check: the receipt is the authoritative completion
	// marker. If it exists, the parcel was already advanced.
	prior, err := e.receipts.GetByTransactionID(ctx, out.TransactionID)
	if err != nil {
		return Result{}, err
	}
	if prior != nil {
		return e.replay(prior), nil
	}

	out.PaidAt = e.now()
	trackingID, err := e.lifecycle.MarkPaid(ctx, out)
	if err != nil {
		// A concurrent reconcile that wins surfaces here in one of two
		// shapes: the loser's receipt insert hits the unique index, or the
		// loser serializes behind the winner's row lock and re-reads the
		// parcel already paid. Either way the stored receipt decides: if
		// it exists, converge on the replay result.
		if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrTransition) {
			prior, readErr := e.receipts.GetByTransactionID(ctx, out.TransactionID)
			if readErr != nil {
				return Result{}, readErr
			}
			if prior != nil {
				return e.replay(prior), nil
			}
		}
		if errors.Is(err, apperr.ErrNotFound) {
			return Result{}, fmt.Errorf("session %q references missing parcel %d: %w",
				sessionRef, out.ParcelID, apperr.ErrNotFound)
		}
		return Result{}, err
	}

	return Result{Success: true, TrackingID: trackingID, TransactionID: out.TransactionID}, nil
}

func (e *Engine) replay(prior *domain.PaymentReceipt) Result {
	if e.replays != nil {
		e.replays.Inc()
	}
	e.logger.Info("payment already reconciled",
		logx.String("event", "reconcile_replay"),
		logx.String("transaction_id", prior.TransactionID),
		logx.String("tracking_id", prior.TrackingID),
	)
	return Result{Success: true, TrackingID: prior.TrackingID, TransactionID: prior.TransactionID}
}

// outcomeFromSession derives the canonical outcome from a paid session.
func outcomeFromSession(sess *checkout.Session) (domain.PaymentOutcome, error) {
	if sess.PaymentIntentID == "" {
		return domain.PaymentOutcome{}, fmt.Errorf("paid session %q has no transaction id", sess.ID)
	}
	parcelID, err := strconv.ParseInt(sess.Metadata["parcelId"], 10, 64)
	if err != nil || parcelID <= 0 {
		return domain.PaymentOutcome{}, fmt.Errorf("session %q has no parcel reference", sess.ID)
	}
	return domain.PaymentOutcome{
		TransactionID: sess.PaymentIntentID,
		Paid:          true,
		Amount:        sess.AmountTotal,
		Currency:      sess.Currency,
		CustomerEmail: sess.CustomerEmail,
		ParcelID:      parcelID,
		TrackingID:    sess.Metadata["trackingId"],
	}, nil
}

// ListByCustomer returns a customer's receipts, newest first. Ownership
// is enforced at the HTTP layer before this is invoked.
func (e *Engine) ListByCustomer(ctx context.Context, email string) ([]domain.PaymentReceipt, error) {
	if !domain.ValidateEmail(email) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, e.operationTimeout)
	defer cancel()
	return e.receipts.ListByCustomer(ctx, email)
}
