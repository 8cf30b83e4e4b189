package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewCheckoutRetriesTotal returns a Prometheus counter for the number of retry attempts against the payment provider
func NewCheckoutRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_retries_total",
		Help: "Total number of retry attempts performed by the checkout gateway",
	})
}

// NewReconcileReplaysTotal returns a Prometheus counter for payment confirmations that were already applied
func NewReconcileReplaysTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_replays_total",
		Help: "Total number of payment reconciliations answered from an existing receipt",
	})
}

// NewLedgerAppendFailuresTotal returns a Prometheus counter for tracking ledger writes that failed
func NewLedgerAppendFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_append_failures_total",
		Help: "Total number of tracking ledger appends that failed and were dropped",
	})
}
