// Package checkout is the payment-provider gateway. The provider exposes
// Stripe-shaped checkout sessions over REST; this client is the narrow
// surface the core sees.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Session is the provider's view of one checkout session.
type Session struct {
	ID              string
	URL             string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	PaymentIntentID string
	Metadata        map[string]string
}

// Paid reports whether the provider considers the session settled.
func (s *Session) Paid() bool {
	return s != nil && s.PaymentStatus == "paid"
}

// CreateSessionParams carries everything the provider needs to open a
// hosted checkout page. Metadata travels opaquely and comes back on
// retrieval; the core uses it to tie the session to a parcel.
type CreateSessionParams struct {
	Amount        int64 // minor currency units
	Currency      string
	ProductName   string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("checkout api: status %d: %s", e.StatusCode, e.Message)
}

// HTTPGateway is a checkout gateway backed by the provider's REST API.
type HTTPGateway struct {
	baseURL string
	secret  string
	client  *http.Client
}

// NewHTTPGateway creates a checkout gateway.
func NewHTTPGateway(baseURL, secret string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sessionDTO struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

func mapSession(dto sessionDTO) *Session {
	return &Session{
		ID:              dto.ID,
		URL:             dto.URL,
		PaymentStatus:   dto.PaymentStatus,
		AmountTotal:     dto.AmountTotal,
		Currency:        dto.Currency,
		CustomerEmail:   dto.CustomerEmail,
		PaymentIntentID: dto.PaymentIntent,
		Metadata:        dto.Metadata,
	}
}

// CreateSession opens a hosted checkout session and returns it with the
// redirect URL set.
func (g *HTTPGateway) CreateSession(ctx context.Context, p CreateSessionParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", p.CustomerEmail)
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	for k, v := range p.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("checkout gateway: CreateSession: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	dto, err := g.do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout gateway: CreateSession: %w", err)
	}
	return mapSession(*dto), nil
}

// RetrieveSession fetches a session by reference. An unknown reference
// returns nil, nil.
func (g *HTTPGateway) RetrieveSession(ctx context.Context, ref string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/v1/checkout/sessions/"+url.PathEscape(ref), nil)
	if err != nil {
		return nil, fmt.Errorf("checkout gateway: RetrieveSession: %w", err)
	}

	dto, err := g.do(req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("checkout gateway: RetrieveSession: %w", err)
	}
	return mapSession(*dto), nil
}

func (g *HTTPGateway) do(req *http.Request) (*sessionDTO, error) {
	req.Header.Set("Authorization", "Bearer "+g.secret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var dto sessionDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &dto, nil
}
