package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "zapshift",
	Pass: "zapshift",
	Name: "zapshift",
}

var defaultKafka = Kafka{
	PaymentsTopic: "checkout.sessions.completed",
	TrackingTopic: "parcel.tracking.events",
	GroupID:       "zapshift-reconciler",
}

var defaultCheckout = Checkout{
	BaseURL:    "https://api.stripe.com",
	SiteDomain: "http://localhost:5173",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultLifecycle = Lifecycle{
	OperationTimeout: 3 * time.Second,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultLifecycle returns the default core operation settings.
func DefaultLifecycle() Lifecycle {
	return defaultLifecycle
}
