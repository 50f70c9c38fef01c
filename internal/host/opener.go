package host

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/marko-lisica/popup/internal/config"
)

// OpenerHost hands webview URLs to the desktop opener. It stands in for a
// native webview window on systems without one.
type OpenerHost struct {
	command string
	bridge  *Bridge
	logger  *slog.Logger
}

// NewOpenerHost creates an OpenerHost. An empty command means auto-detect.
func NewOpenerHost(bridge *Bridge, command string, logger *slog.Logger) *OpenerHost {
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenerHost{
		command: command,
		bridge:  bridge,
		logger:  logger,
	}
}

// Present opens the webview URL with the configured or detected opener.
func (h *OpenerHost) Present(ctx context.Context) error {
	cfg, err := h.bridge.GetConfig()
	if err != nil {
		return err
	}
	content, ok := cfg.Content.(*config.WebviewContent)
	if !ok {
		return fmt.Errorf("opener host cannot present %s content", cfg.Content.ContentType())
	}

	cmdline := h.command
	if cmdline == "" {
		cmdline = detectOpenerCommand()
	}
	if cmdline == "" {
		return fmt.Errorf("no opener command available")
	}

	parts := strings.Fields(cmdline)
	args := append(parts[1:], content.URL)

	h.logger.Debug("opening webview url", "command", parts[0], "url", content.URL)

	c := exec.CommandContext(ctx, parts[0], args...)
	if err := c.Run(); err != nil {
		return fmt.Errorf("open %q: %w", content.URL, err)
	}
	return nil
}

// detectOpenerCommand returns the opener command to use based on what is
// installed.
func detectOpenerCommand() string {
	for _, candidate := range []string{"xdg-open", "open"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
