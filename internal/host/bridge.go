package host

import (
	"log/slog"
	"os"

	"github.com/marko-lisica/popup/internal/config"
	"github.com/marko-lisica/popup/internal/state"
)

// Bridge is the two-way surface between the core and a window host: the
// host queries the resolved config through it and issues process-level
// commands back. Geometry and rendering stay host-side; only numbers and
// the immutable config pass through here.
type Bridge struct {
	store  *state.Store
	logger *slog.Logger
	exit   func(int)
}

// NewBridge creates a Bridge backed by the given config store.
func NewBridge(store *state.Store, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		store:  store,
		logger: logger,
		exit:   os.Exit,
	}
}

// GetConfig returns the resolved config for host introspection. It fails
// with state.ErrNoConfig when called before resolution completes.
func (b *Bridge) GetConfig() (*config.Config, error) {
	return b.store.Config()
}

// ExitWithCode terminates the process at the host's request.
func (b *Bridge) ExitWithCode(code int) {
	b.logger.Debug("host requested exit", "code", code)
	b.exit(code)
}

// ResizeWindowToContent accepts a host resize request. The dimensions are
// recorded for the host's window layer to act on.
func (b *Bridge) ResizeWindowToContent(width, height float64) {
	b.logger.Debug("host requested resize", "width", width, "height", height)
}
