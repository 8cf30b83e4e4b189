package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"zapshift/internal/apperr"
	"zapshift/internal/config"
	"zapshift/internal/logx"
	"zapshift/internal/service/payment"
	"zapshift/internal/transport/kafka"
)

// makePaymentsKafka builds the handler the worker runs for each checkout
// session event: reconcile the session against parcel state.
func makePaymentsKafka(e *payment.Engine, logger logx.Logger) kafka.HandleFunc {
	return func(ctx context.Context, ev kafka.SessionEvent) error {
		res, err := e.Reconcile(ctx, ev.SessionID)
		switch {
		case err == nil:
			logger.Info("session reconciled",
				logx.String("session_id", ev.SessionID),
				logx.String("tracking_id", res.TrackingID),
				logx.Any("success", res.Success),
			)
			return nil
		case errors.Is(err, apperr.ErrInvalid), errors.Is(err, apperr.ErrNotFound):
			// malformed or unknown reference, redelivery cannot help
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}

func registerKafkaWorker(container *dig.Container) error {
	return provideAll(container,
		makePaymentsKafka,
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			c, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PaymentsTopic, h, logger)
			if err != nil {
				return nil, fmt.Errorf("kafka consumer: %w", err)
			}
			return c, nil
		},
	)
}
