// Package config implements the popup configuration model and the
// resolution pipeline that produces one finalized, validated Config from
// built-in defaults, an optional YAML file, and CLI overrides.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Default window geometry.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Recognized title bar styles.
const (
	TitleBarOverlay     = "overlay"
	TitleBarTransparent = "transparent"
	TitleBarVisible     = "visible"
)

// DefaultTitleBarStyle is used when no style is given and substituted for
// unrecognized ones.
const DefaultTitleBarStyle = TitleBarOverlay

// allowedSchemes are the URL prefixes accepted for webview content.
var allowedSchemes = []string{"http://", "https://", "file://"}

// WindowConfig describes the geometry and behavior of the popup window.
type WindowConfig struct {
	Width                  float64 `yaml:"width"`
	Height                 float64 `yaml:"height"`
	Resizable              bool    `yaml:"resizable"`
	AlwaysOnTop            bool    `yaml:"always_on_top"`
	SkipTaskbar            bool    `yaml:"skip_taskbar"`
	Focus                  bool    `yaml:"focus"`
	VisibleOnAllWorkspaces bool    `yaml:"visible_on_all_workspaces"`
	Closable               bool    `yaml:"closable"`
	Minimizable            bool    `yaml:"minimizable"`
	HiddenTitle            bool    `yaml:"hidden_title"`
	TitleBarStyle          string  `yaml:"title_bar_style"`
}

// DefaultWindowConfig returns the baseline window configuration that every
// other layer overrides.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:                  DefaultWidth,
		Height:                 DefaultHeight,
		Resizable:              false,
		AlwaysOnTop:            true,
		SkipTaskbar:            true,
		Focus:                  true,
		VisibleOnAllWorkspaces: true,
		Closable:               false,
		Minimizable:            false,
		HiddenTitle:            true,
		TitleBarStyle:          DefaultTitleBarStyle,
	}
}

// NotificationWindowTemplate returns the fixed window configuration used for
// notification popups. Notification windows are presentation-locked: the
// template replaces any window settings supplied via file or CLI.
func NotificationWindowTemplate() WindowConfig {
	return WindowConfig{
		Width:                  500,
		Height:                 300,
		Resizable:              false,
		AlwaysOnTop:            true,
		SkipTaskbar:            true,
		Focus:                  true,
		VisibleOnAllWorkspaces: true,
		Closable:               false,
		Minimizable:            false,
		HiddenTitle:            true,
		TitleBarStyle:          TitleBarOverlay,
	}
}

// Content is the semantic payload of the popup. Exactly one concrete type
// backs it in a resolved Config: *WebviewContent or *NotificationContent.
// Consumers must type-switch over both and treat anything else as a bug.
type Content interface {
	// ContentType returns the type name used on CLI and YAML surfaces.
	ContentType() string
	isContent()
}

// WebviewContent loads an external webpage or a local HTML file.
type WebviewContent struct {
	URL         string `yaml:"url"`
	WindowTitle string `yaml:"window_title,omitempty"`
}

func (*WebviewContent) ContentType() string { return "webview" }
func (*WebviewContent) isContent()          {}

// NotificationContent displays a notification dialog with up to two buttons.
type NotificationContent struct {
	Title                  string         `yaml:"title"`
	Description            string         `yaml:"description"`
	Icon                   string         `yaml:"icon,omitempty"`
	ButtonPrimaryText      string         `yaml:"button_primary_text,omitempty"`
	ButtonPrimaryWebhook   *WebhookConfig `yaml:"button_primary_webhook,omitempty"`
	ButtonSecondaryText    string         `yaml:"button_secondary_text,omitempty"`
	ButtonSecondaryWebhook *WebhookConfig `yaml:"button_secondary_webhook,omitempty"`
}

func (*NotificationContent) ContentType() string { return "notification" }
func (*NotificationContent) isContent()          {}

// WebhookConfig is a URL plus an opaque payload (typically JSON) fired when
// a notification button is pressed. Both fields are required together.
type WebhookConfig struct {
	URL     string `yaml:"url"`
	Payload string `yaml:"payload"`
}

// PairWebhook builds a WebhookConfig from a url/payload pair supplied as
// separate optional values. Both absent means no webhook; one absent is an
// error naming the button.
func PairWebhook(button, url, payload string) (*WebhookConfig, error) {
	switch {
	case url == "" && payload == "":
		return nil, nil
	case url == "" || payload == "":
		return nil, fmt.Errorf("%w: %s button", ErrIncompleteWebhook, button)
	}
	return &WebhookConfig{URL: url, Payload: payload}, nil
}

// Config is the fully resolved popup configuration: one content variant plus
// a fully populated window. It is immutable once resolution completes.
type Config struct {
	Content Content
	Window  WindowConfig
}

// Validate checks the resolved config and normalizes the title bar style.
// An unrecognized style is replaced with the default and logged, never
// rejected; every other violation is fatal.
func (c *Config) Validate(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateDimension("width", c.Window.Width); err != nil {
		return err
	}
	if err := validateDimension("height", c.Window.Height); err != nil {
		return err
	}

	style := strings.ToLower(strings.TrimSpace(c.Window.TitleBarStyle))
	switch style {
	case TitleBarOverlay, TitleBarTransparent, TitleBarVisible:
		c.Window.TitleBarStyle = style
	default:
		logger.Warn("unknown title bar style, using default",
			"style", c.Window.TitleBarStyle, "default", DefaultTitleBarStyle)
		c.Window.TitleBarStyle = DefaultTitleBarStyle
	}

	switch content := c.Content.(type) {
	case *WebviewContent:
		return validateURLScheme(content.URL)
	case *NotificationContent:
		if content.Title == "" {
			return fmt.Errorf("%w: notification.title", ErrMissingField)
		}
		if content.Description == "" {
			return fmt.Errorf("%w: notification.description", ErrMissingField)
		}
		if err := validateWebhook("primary", content.ButtonPrimaryWebhook); err != nil {
			return err
		}
		return validateWebhook("secondary", content.ButtonSecondaryWebhook)
	default:
		return fmt.Errorf("unhandled content type %T", c.Content)
	}
}

func validateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s %v", ErrInvalidDimension, name, v)
	}
	return nil
}

func validateURLScheme(url string) error {
	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(url, scheme) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidURLScheme, url)
}

func validateWebhook(button string, hook *WebhookConfig) error {
	if hook == nil {
		return nil
	}
	if hook.URL == "" || hook.Payload == "" {
		return fmt.Errorf("%w: %s button", ErrIncompleteWebhook, button)
	}
	return nil
}
