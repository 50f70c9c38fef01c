// Package webhook delivers notification button webhooks over HTTP.
package webhook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/marko-lisica/popup/internal/config"
)

// DefaultTimeout bounds a single webhook delivery.
const DefaultTimeout = 10 * time.Second

// Dispatcher posts webhook payloads to their URLs.
type Dispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher with the default timeout.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		client: &http.Client{Timeout: DefaultTimeout},
		logger: logger,
	}
}

// Dispatch posts the webhook payload to its URL. The payload is sent as-is;
// it is typically JSON but treated as opaque here. A nil hook is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, hook *config.WebhookConfig) error {
	if hook == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL,
		strings.NewReader(hook.Payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s returned status %d", hook.URL, resp.StatusCode)
	}

	d.logger.Debug("webhook delivered", "url", hook.URL, "status", resp.StatusCode)
	return nil
}
