package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/config"
)

// WebhookAdapter delivers events as JSON POSTs to a fixed endpoint
type WebhookAdapter struct {
	url        string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWebhookAdapter creates a webhook adapter for the configured endpoint
func NewWebhookAdapter(cfg config.AdapterConfig, logger *zap.Logger) *WebhookAdapter {
	// Normalize endpoint - strip trailing slashes
	url := strings.TrimSuffix(cfg.WebhookURL, "/")

	return &WebhookAdapter{
		url:   url,
		token: cfg.WebhookToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Connect verifies the endpoint answers; webhooks have no persistent channel
func (a *WebhookAdapter) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, a.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach webhook endpoint: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("webhook endpoint unavailable: status %d", resp.StatusCode)
	}
	return nil
}

// PublishMessage POSTs the payload with the event name and the caller's
// headers attached
func (a *WebhookAdapter) PublishMessage(ctx context.Context, eventName string, payload interface{}, headers map[string]string) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Name", eventName)
	req.Header.Set("X-Message-Id", uuid.NewString())
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook error: status %d, body: %s", resp.StatusCode, string(body))
	}

	a.logger.Debug("Webhook delivered",
		zap.String("event", eventName),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
