package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/config"
)

// KafkaAdapter delivers events to a Kafka topic
type KafkaAdapter struct {
	brokers []string
	writer  *kafka.Writer
	logger  *zap.Logger
}

// NewKafkaAdapter creates a Kafka adapter for the configured brokers and topic
func NewKafkaAdapter(cfg config.AdapterConfig, logger *zap.Logger) *KafkaAdapter {
	return &KafkaAdapter{
		brokers: cfg.KafkaBrokers,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

// Connect dials the first broker to verify the cluster is reachable
func (a *KafkaAdapter) Connect(ctx context.Context) error {
	conn, err := kafka.DialContext(ctx, "tcp", a.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to reach kafka broker: %w", err)
	}
	return conn.Close()
}

// PublishMessage writes one message keyed by a fresh message id, with the
// event name and the caller's headers attached as kafka headers
func (a *KafkaAdapter) PublishMessage(ctx context.Context, eventName string, payload interface{}, headers map[string]string) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	kafkaHeaders := make([]kafka.Header, 0, len(headers)+1)
	kafkaHeaders = append(kafkaHeaders, kafka.Header{Key: "event-name", Value: []byte(eventName)})
	for key, header := range headers {
		kafkaHeaders = append(kafkaHeaders, kafka.Header{Key: key, Value: []byte(header)})
	}

	msg := kafka.Message{
		Key:     []byte(uuid.NewString()),
		Value:   value,
		Headers: kafkaHeaders,
	}
	if err := a.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write kafka message: %w", err)
	}

	a.logger.Debug("Kafka message published", zap.String("event", eventName))
	return nil
}

// Close flushes and closes the underlying writer
func (a *KafkaAdapter) Close() error {
	return a.writer.Close()
}
