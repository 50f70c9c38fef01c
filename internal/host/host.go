// Package host adapts a resolved popup configuration onto a concrete window
// host. Hosts are pure collaborators: they read the finalized config
// through the Bridge and make no resolution decisions of their own.
package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marko-lisica/popup/internal/config"
)

// Host presents the resolved popup to the user.
type Host interface {
	// Present shows the popup and blocks until it is dismissed, acted on,
	// or ctx is cancelled.
	Present(ctx context.Context) error
}

// New returns the host matching the resolved content type. The opener
// command is only used for webview content; empty means auto-detect.
func New(cfg *config.Config, bridge *Bridge, openerCommand string, logger *slog.Logger) (Host, error) {
	switch cfg.Content.(type) {
	case *config.NotificationContent:
		return NewNotifyHost(bridge, logger), nil
	case *config.WebviewContent:
		return NewOpenerHost(bridge, openerCommand, logger), nil
	default:
		return nil, fmt.Errorf("unhandled content type %T", cfg.Content)
	}
}
