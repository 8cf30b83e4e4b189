package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func swapPoolAndMigrate(t *testing.T,
	poolFn func(context.Context, string) (*pgxpool.Pool, error),
	migrateFn func(string) error,
) {
	t.Helper()
	origPool, origMigrate := newPool, migrate
	t.Cleanup(func() {
		newPool, migrate = origPool, origMigrate
	})
	if poolFn != nil {
		newPool = poolFn
	}
	if migrateFn != nil {
		migrate = migrateFn
	}
}

func TestConnectDbWithRetry_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	stub := &pgxpool.Pool{}
	swapPoolAndMigrate(t, func(context.Context, string) (*pgxpool.Pool, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return stub, nil
	}, nil)

	pool, err := connectDbWithRetry(context.Background(), "dsn", 5, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, stub, pool)
	require.Equal(t, 3, attempts)
}

func TestConnectDbWithRetry_ExhaustsRetries(t *testing.T) {
	sentinel := errors.New("connection refused")
	swapPoolAndMigrate(t, func(context.Context, string) (*pgxpool.Pool, error) {
		return nil, sentinel
	}, nil)

	pool, err := connectDbWithRetry(context.Background(), "dsn", 3, time.Millisecond)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, pool)
}

func TestConnectDbWithRetry_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	swapPoolAndMigrate(t, func(context.Context, string) (*pgxpool.Pool, error) {
		return nil, errors.New("connection refused")
	}, nil)

	pool, err := connectDbWithRetry(ctx, "dsn", 5, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, pool)
}

func TestConnectAndMigrate_ConnectFailurePropagates(t *testing.T) {
	sentinel := errors.New("connection refused")
	swapPoolAndMigrate(t, func(context.Context, string) (*pgxpool.Pool, error) {
		return nil, sentinel
	}, nil)

	pool, err := connectAndMigrate(context.Background(), "dsn", 1, time.Millisecond)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, pool)
}

func TestConnectAndMigrate_Success(t *testing.T) {
	stub := &pgxpool.Pool{}
	migrated := ""
	swapPoolAndMigrate(t,
		func(context.Context, string) (*pgxpool.Pool, error) { return stub, nil },
		func(dsn string) error {
			migrated = dsn
			return nil
		},
	)

	pool, err := connectAndMigrate(context.Background(), "dsn", 1, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, stub, pool)
	require.Equal(t, "dsn", migrated)
}
