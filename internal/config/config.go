package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores document-store connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores payment-event consumer and ledger-mirror settings.
// Empty brokers disable the kafka paths entirely.
type Kafka struct {
	Brokers       []string
	PaymentsTopic string
	TrackingTopic string
	GroupID       string
}

// Checkout stores payment-provider client settings.
type Checkout struct {
	SecretKey  string
	BaseURL    string
	SiteDomain string
}

// Auth stores identity-verification settings.
type Auth struct {
	JWTSecret string
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Lifecycle stores core operation settings.
type Lifecycle struct {
	OperationTimeout time.Duration
}

// Config stores all service settings.
type Config struct {
	Port      int
	PprofAddr string
	PprofUser string
	PprofPass string
	DB        DB
	Kafka     Kafka
	Checkout  Checkout
	Auth      Auth
	RateLimit RateLimit
	Lifecycle Lifecycle
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      envInt("PORT", DefaultPort()),
		PprofAddr: envStr("PPROF_ADDR", ""),
		PprofUser: envStr("PPROF_USER", ""),
		PprofPass: envStr("PPROF_PASSWORD", ""),
		DB: DB{
			Host: envStr("DB_HOST", defaultDB.Host),
			Port: envStr("DB_PORT", defaultDB.Port),
			User: envStr("DB_USER", defaultDB.User),
			Pass: envStr("DB_PASSWORD", defaultDB.Pass),
			Name: envStr("DB_NAME", defaultDB.Name),
		},
		Kafka: Kafka{
			Brokers:       envList("KAFKA_BROKERS"),
			PaymentsTopic: envStr("KAFKA_PAYMENTS_TOPIC", defaultKafka.PaymentsTopic),
			TrackingTopic: envStr("KAFKA_TRACKING_TOPIC", defaultKafka.TrackingTopic),
			GroupID:       envStr("KAFKA_GROUP_ID", defaultKafka.GroupID),
		},
		Checkout: Checkout{
			SecretKey:  envStr("CHECKOUT_SECRET", ""),
			BaseURL:    envStr("CHECKOUT_BASE_URL", defaultCheckout.BaseURL),
			SiteDomain: envStr("SITE_DOMAIN", defaultCheckout.SiteDomain),
		},
		Auth: Auth{
			JWTSecret: envStr("JWT_SECRET", ""),
		},
		RateLimit: DefaultRateLimit(),
		Lifecycle: DefaultLifecycle(),
	}
	cfg.RateLimit.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)

	if v := os.Getenv("OPERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATION_TIMEOUT: %w", err)
		}
		cfg.Lifecycle.OperationTimeout = d
	}

	// a fresh FlagSet keeps Load safe to call more than once
	fs := pflag.NewFlagSet("zapshift", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
