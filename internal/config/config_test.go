package config_test

import (
	"os"
	"testing"
	"time"

	"zapshift/internal/config"

	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldArgs := os.Args
	os.Args = []string{oldArgs[0]}
	t.Cleanup(func() {
		os.Args = oldArgs
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"KAFKA_BROKERS", "KAFKA_PAYMENTS_TOPIC", "KAFKA_GROUP_ID",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST",
		"OPERATION_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "zapshift", cfg.DB.User)
	require.Equal(t, "zapshift", cfg.DB.Name)

	require.Nil(t, cfg.Kafka.Brokers)
	require.Equal(t, "checkout.sessions.completed", cfg.Kafka.PaymentsTopic)
	require.Equal(t, "zapshift-reconciler", cfg.Kafka.GroupID)

	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, 3*time.Second, cfg.Lifecycle.OperationTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "15432")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "parcels")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092 ,")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "20")
	t.Setenv("OPERATION_TIMEOUT", "7s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "db", cfg.DB.Host)
	require.Equal(t, "15432", cfg.DB.Port)
	require.Equal(t, "u", cfg.DB.User)
	require.Equal(t, "p", cfg.DB.Pass)
	require.Equal(t, "parcels", cfg.DB.Name)
	require.Equal(t, "postgres://u:p@db:15432/parcels?sslmode=disable", cfg.DB.DSN())

	require.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.Brokers)

	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 5.5, cfg.RateLimit.Rate)
	require.Equal(t, 20, cfg.RateLimit.Burst)
	require.Equal(t, 7*time.Second, cfg.Lifecycle.OperationTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidOperationTimeout(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("OPERATION_TIMEOUT", "bad-interval")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Setenv("PORT", "")
	clearEnv(t)

	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}

func TestLoad_PortFlagOverridesEnv(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	clearEnv(t)
	t.Setenv("PORT", "9090")

	os.Args = []string{"cmd", "--port=9191"}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Port)
}
