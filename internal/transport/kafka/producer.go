package kafka

import (
	"time"

	"github.com/IBM/sarama"

	"zapshift/internal/logx"
)

// SaramaProducer publishes messages through a synchronous Sarama producer.
type SaramaProducer struct {
	producer sarama.SyncProducer
	logger   logx.Logger
}

// NewSaramaProducer creates a SaramaProducer. With no brokers configured it
// returns nil and publishing is disabled.
func NewSaramaProducer(brokers []string, logger logx.Logger) (*SaramaProducer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second

	prod, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &SaramaProducer{producer: prod, logger: logger}, nil
}

// Publish sends message to topic and waits for the broker ack.
func (p *SaramaProducer) Publish(topic string, message []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return err
	}
	p.logger.Debug("kafka message published",
		logx.String("topic", topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

func (p *SaramaProducer) Close() error {
	return p.producer.Close()
}
