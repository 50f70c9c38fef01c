package config

import (
	"errors"
	"log/slog"
)

// ErrNoInput is returned when an invocation supplies neither a config file
// nor content to display.
var ErrNoInput = errors.New("must provide a config file or a content type")

// Options carries one invocation's inputs into Resolve.
type Options struct {
	// FilePath selects file-based resolution when non-empty.
	FilePath string
	// Content is the CLI-built content. Ignored when FilePath is set.
	Content Content
	// Window holds the CLI window flag overrides.
	Window WindowOverrides
}

// Resolve produces the single finalized Config for this invocation, or the
// first error encountered. Steps, in order: obtain content and a baseline
// window from the file or from CLI inputs, merge CLI window overrides,
// enforce the notification window template, validate. There is no partial
// result: resolution yields one fully valid Config or none.
func Resolve(opts Options, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	switch {
	case opts.FilePath != "":
		doc, err := loadFile(opts.FilePath)
		if err != nil {
			return nil, err
		}
		cfg, err = mapDocument(doc)
		if err != nil {
			return nil, err
		}
	case opts.Content != nil:
		cfg = &Config{Content: opts.Content, Window: DefaultWindowConfig()}
	default:
		return nil, ErrNoInput
	}

	cfg.Window = opts.Window.Apply(cfg.Window)

	// Template wins, last: notification popups are presentation-locked, so
	// whatever window settings the file or CLI supplied are discarded here.
	if _, ok := cfg.Content.(*NotificationContent); ok {
		cfg.Window = NotificationWindowTemplate()
	}

	if err := cfg.Validate(logger); err != nil {
		return nil, err
	}

	logger.Debug("config resolved",
		"content_type", cfg.Content.ContentType(),
		"width", cfg.Window.Width,
		"height", cfg.Window.Height)

	return cfg, nil
}
