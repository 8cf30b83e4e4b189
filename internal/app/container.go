package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"zapshift/internal/auth"
	"zapshift/internal/config"
	"zapshift/internal/gateway/checkout"
	"zapshift/internal/http/handlers"
	appmw "zapshift/internal/http/middleware"
	"zapshift/internal/http/router"
	"zapshift/internal/logx"
	"zapshift/internal/metrics"
	"zapshift/internal/repository"
	"zapshift/internal/service/lifecycle"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/payment"
	"zapshift/internal/service/rider"
	"zapshift/internal/service/tracking"
	"zapshift/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectAndMigrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// ForWorker switches the builder to the kafka worker wiring.
func (b *ContainerBuilder) ForWorker() *ContainerBuilder {
	b.worker = true
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if b.worker {
		if err := registerKafkaWorker(container); err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
		return container, nil
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the kafka worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().ForWorker().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

type countersOut struct {
	dig.Out

	RateLimitExceeded   prometheus.Counter `name:"rate_limit_exceeded_total"`
	CheckoutRetries     prometheus.Counter `name:"checkout_retries_total"`
	ReconcileReplays    prometheus.Counter `name:"reconcile_replays_total"`
	LedgerAppendFailure prometheus.Counter `name:"ledger_append_failures_total"`
}

func newCounters() countersOut {
	return countersOut{
		RateLimitExceeded:   metrics.NewRateLimitExceededTotal(),
		CheckoutRetries:     metrics.NewCheckoutRetriesTotal(),
		ReconcileReplays:    metrics.NewReconcileReplaysTotal(),
		LedgerAppendFailure: metrics.NewLedgerAppendFailuresTotal(),
	}
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newCounters,
		func(cfg *config.Config) time.Duration { return cfg.Lifecycle.OperationTimeout },
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type recorderIn struct {
	dig.In

	Repo     *repository.TrackingRepo
	Producer *kafka.SaramaProducer `optional:"true"`
	Cfg      *config.Config
	Logger   logx.Logger
	Failures prometheus.Counter `name:"ledger_append_failures_total"`
}

func newRecorder(in recorderIn) *tracking.Recorder {
	// a typed nil producer must become a nil interface, not a non-nil
	// interface wrapping nil
	var pub tracking.Publisher
	if in.Producer != nil {
		pub = in.Producer
	}
	return tracking.NewRecorder(in.Repo, pub, in.Cfg.Kafka.TrackingTopic, in.Logger, in.Failures)
}

type engineIn struct {
	dig.In

	Gateway  *checkout.RetryingGateway
	Receipts *repository.PaymentRepo
	Parcels  *repository.ParcelRepo
	LC       *lifecycle.Service
	Cfg      *config.Config
	Timeout  time.Duration
	Logger   logx.Logger
	Replays  prometheus.Counter `name:"reconcile_replays_total"`
}

func newEngine(in engineIn) *payment.Engine {
	return payment.NewEngine(
		in.Gateway, in.Receipts, in.Parcels, in.LC,
		in.Cfg.Checkout.SiteDomain, in.Timeout, in.Logger, in.Replays,
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewParcelRepo,
		repository.NewRiderRepo,
		repository.NewPaymentRepo,
		repository.NewTrackingRepo,
		repository.NewLifecycleRepo,
		repository.NewUserRepo,
		newProducer,
		newRecorder,
		func(repo *repository.LifecycleRepo, ledger *tracking.Recorder, timeout time.Duration, logger logx.Logger) *lifecycle.Service {
			return lifecycle.NewService(repo, ledger, timeout, logger)
		},
		func(repo *repository.ParcelRepo, timeout time.Duration) *parcel.Service {
			return parcel.NewService(repo, timeout)
		},
		func(repo *repository.RiderRepo, timeout time.Duration, logger logx.Logger) *rider.Service {
			return rider.NewService(repo, timeout, logger)
		},
		newEngine,
		func(cfg *config.Config) *auth.JWTVerifier {
			return auth.NewJWTVerifier(cfg.Auth.JWTSecret)
		},
		func(users *repository.UserRepo) *auth.Policy {
			return auth.NewPolicy(users)
		},
	)
}

func newProducer(cfg *config.Config, logger logx.Logger) (*kafka.SaramaProducer, error) {
	return kafka.NewSaramaProducer(cfg.Kafka.Brokers, logger)
}

type checkoutGatewayIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"checkout_retries_total"`
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *checkout.HTTPGateway {
			return checkout.NewHTTPGateway(cfg.Checkout.BaseURL, cfg.Checkout.SecretKey)
		},
		func(in checkoutGatewayIn, next *checkout.HTTPGateway) *checkout.RetryingGateway {
			return checkout.NewRetryingGateway(next, in.Logger, in.Retries, checkout.RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   100 * time.Millisecond,
				MaxDelay:    2 * time.Second,
			})
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		func(v *auth.JWTVerifier, p *auth.Policy, logger logx.Logger) *appmw.Auth {
			return appmw.NewAuth(v, p, logger)
		},
		handlers.New,
		handlers.NewParcelUsecase,
		handlers.NewParcelHandler,
		handlers.NewLifecycleUsecase,
		handlers.NewLifecycleHandler,
		handlers.NewPaymentUsecase,
		handlers.NewPaymentHandler,
		handlers.NewRiderUsecase,
		handlers.NewRiderHandler,
		handlers.NewTrackingUsecase,
		handlers.NewTrackingHandler,
		func(
			base *handlers.Handlers,
			parcels *handlers.ParcelHandler,
			lc *handlers.LifecycleHandler,
			payments *handlers.PaymentHandler,
			riders *handlers.RiderHandler,
			trk *handlers.TrackingHandler,
		) router.Handlers {
			return router.Handlers{
				Base:      base,
				Parcels:   parcels,
				Lifecycle: lc,
				Payments:  payments,
				Riders:    riders,
				Tracking:  trk,
			}
		},
		router.New,
		serverProvider,
	)
}
