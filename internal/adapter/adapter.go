package adapter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/config"
)

// Adapter is the external publish channel. Connect verifies the channel is
// reachable; PublishMessage delivers one event with its headers. Transport,
// retries, and delivery guarantees are the channel's concern, not the
// caller's.
type Adapter interface {
	Connect(ctx context.Context) error
	PublishMessage(ctx context.Context, eventName string, payload interface{}, headers map[string]string) error
}

// New creates the adapter selected by configuration
func New(cfg config.AdapterConfig, logger *zap.Logger) (Adapter, error) {
	switch cfg.Transport {
	case "webhook":
		return NewWebhookAdapter(cfg, logger), nil
	case "kafka":
		return NewKafkaAdapter(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown adapter transport %q", cfg.Transport)
	}
}
