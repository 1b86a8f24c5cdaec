package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher stamps contact messages and delivers them to a webhook.
type Dispatcher struct {
	webhookURL string
	client     *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

// NewDispatcher creates a Dispatcher posting to webhookURL. An empty URL
// yields a dispatcher whose Deliver always returns ErrNotConfigured.
func NewDispatcher(webhookURL string, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Configured reports whether a webhook is set.
func (d *Dispatcher) Configured() bool { return d != nil && d.webhookURL != "" }

// Deliver assigns an id to req and posts it to the webhook.
func (d *Dispatcher) Deliver(ctx context.Context, persona string, req Request) (Message, error) {
	if !d.Configured() {
		return Message{}, ErrNotConfigured
	}
	msg := Message{
		ID:         uuid.NewString(),
		Persona:    persona,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ReceivedAt: d.now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return Message{}, fmt.Errorf("encoding contact message: %w", err)
	}
	if err := d.SendWebhook(ctx, d.webhookURL, payload); err != nil {
		return Message{}, err
	}
	d.logger.Info("contact message delivered", zap.String("id", msg.ID), zap.String("persona", persona))
	return msg, nil
}

// SendWebhook POSTs payload to the given URL.
func (d *Dispatcher) SendWebhook(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
