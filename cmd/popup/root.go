package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/marko-lisica/popup/internal/config"
	"github.com/marko-lisica/popup/internal/host"
	"github.com/marko-lisica/popup/internal/settings"
	"github.com/marko-lisica/popup/internal/state"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

// Global configuration and state
var (
	prefs       *settings.Settings
	logger      *slog.Logger
	configStore = state.NewStore()

	globalOpts struct {
		verbose bool
		dryRun  bool
	}
)

// rootOpts holds the legacy flat-flag invocation values. The subcommand
// forms (notification, custom, file) are preferred; this mode is kept for
// compatibility with older call sites.
var rootOpts struct {
	configPath  string
	contentType string
	url         string
	webview     string // Deprecated: use --type webview --url
	title       string
	description string
	icon        string

	buttonPrimaryText           string
	buttonPrimaryWebhookURL     string
	buttonPrimaryWebhookPayload string

	buttonSecondaryText           string
	buttonSecondaryWebhookURL     string
	buttonSecondaryWebhookPayload string

	templates bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "popup",
	Short: "A simple popup window tool",
	Long: `popup displays a single popup window: either a webview backed by a URL
or a notification dialog with up to two webhook-wired buttons.

The window and content configuration is resolved from built-in defaults, an
optional YAML config file, and CLI flags, then validated before any window
is created.

Examples:
  popup notification --title "Update" --description "A new version is available"
  popup custom --url https://example.com --width 400
  popup file --path ~/.config/popup/deploy.yaml`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		prefs, err = settings.Load("")
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		setupLogger()
		return nil
	},
	RunE: runLegacy,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.dryRun, "dry-run", false,
		"Print the resolved configuration as YAML and exit without opening a window")

	// Hidden host-framework suppression flags; accepted and ignored.
	rootCmd.PersistentFlags().Bool("no-default-features", false, "")
	rootCmd.PersistentFlags().String("color", "", "")
	_ = rootCmd.PersistentFlags().MarkHidden("no-default-features")
	_ = rootCmd.PersistentFlags().MarkHidden("color")

	// Legacy flat-flag mode
	f := rootCmd.Flags()
	f.StringVar(&rootOpts.configPath, "config", "",
		"Path to the YAML config file defining window settings and content")
	f.StringVar(&rootOpts.contentType, "type", "",
		"Content type: 'webview' or 'notification'")
	f.StringVar(&rootOpts.url, "url", "",
		"URL to load for webview type")
	f.StringVar(&rootOpts.webview, "webview", "",
		"DEPRECATED: Use --type webview --url instead")
	f.StringVar(&rootOpts.title, "title", "",
		"Title (for notification or webview window title)")
	f.StringVar(&rootOpts.description, "description", "",
		"Description (for notification type)")
	f.StringVar(&rootOpts.icon, "icon", "",
		"Icon URL or file path (for notification type)")
	f.StringVar(&rootOpts.buttonPrimaryText, "button-primary-text", "",
		`Primary button text (default "Ok")`)
	f.StringVar(&rootOpts.buttonPrimaryWebhookURL, "button-primary-webhook-url", "",
		"Primary button webhook URL")
	f.StringVar(&rootOpts.buttonPrimaryWebhookPayload, "button-primary-webhook-payload", "",
		"Primary button webhook payload (JSON string)")
	f.StringVar(&rootOpts.buttonSecondaryText, "button-secondary-text", "",
		`Secondary button text (default "Cancel")`)
	f.StringVar(&rootOpts.buttonSecondaryWebhookURL, "button-secondary-webhook-url", "",
		"Secondary button webhook URL")
	f.StringVar(&rootOpts.buttonSecondaryWebhookPayload, "button-secondary-webhook-payload", "",
		"Secondary button webhook payload (JSON string)")
	f.BoolVar(&rootOpts.templates, "templates", false,
		"List available content types")
	addWindowFlags(rootCmd)
}

// runLegacy handles the flat-flag invocation shape: a --type selector (or
// deprecated --webview) plus optional overrides, or a --config file.
func runLegacy(cmd *cobra.Command, args []string) error {
	if rootOpts.templates {
		printContentTypes(cmd.OutOrStdout())
		return nil
	}

	opts := config.Options{Window: windowFlagOverrides(cmd)}

	switch {
	case rootOpts.configPath != "":
		opts.FilePath = rootOpts.configPath
	default:
		contentType := rootOpts.contentType
		if contentType == "" && rootOpts.webview != "" {
			logger.Warn("--webview is deprecated, use --type webview --url instead")
			contentType = "webview"
		}

		content, err := legacyContent(contentType)
		if err != nil {
			return err
		}
		opts.Content = content
	}

	return runResolved(cmd, opts)
}

// legacyContent builds Content from the flat flags for the given type.
func legacyContent(contentType string) (config.Content, error) {
	switch contentType {
	case "webview":
		url := rootOpts.url
		if url == "" {
			url = rootOpts.webview
		}
		if url == "" {
			return nil, fmt.Errorf("%w: --url (required for webview type)", config.ErrMissingField)
		}
		return &config.WebviewContent{
			URL:         url,
			WindowTitle: rootOpts.title,
		}, nil
	case "notification":
		return notificationContentFromFlags(notificationFlags{
			title:                   rootOpts.title,
			description:             rootOpts.description,
			icon:                    rootOpts.icon,
			primaryText:             rootOpts.buttonPrimaryText,
			primaryWebhookURL:       rootOpts.buttonPrimaryWebhookURL,
			primaryWebhookPayload:   rootOpts.buttonPrimaryWebhookPayload,
			secondaryText:           rootOpts.buttonSecondaryText,
			secondaryWebhookURL:     rootOpts.buttonSecondaryWebhookURL,
			secondaryWebhookPayload: rootOpts.buttonSecondaryWebhookPayload,
		})
	case "":
		return nil, config.ErrNoInput
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownContentType, contentType)
	}
}

// notificationFlags collects the notification flag values shared by the
// subcommand and legacy invocation shapes.
type notificationFlags struct {
	title       string
	description string
	icon        string

	primaryText           string
	primaryWebhookURL     string
	primaryWebhookPayload string

	secondaryText           string
	secondaryWebhookURL     string
	secondaryWebhookPayload string
}

// notificationContentFromFlags assembles notification content, enforcing
// that each button's webhook url and payload come together.
func notificationContentFromFlags(f notificationFlags) (*config.NotificationContent, error) {
	if f.title == "" {
		return nil, fmt.Errorf("%w: --title (required for notification type)", config.ErrMissingField)
	}
	if f.description == "" {
		return nil, fmt.Errorf("%w: --description (required for notification type)", config.ErrMissingField)
	}

	primary, err := config.PairWebhook("primary", f.primaryWebhookURL, f.primaryWebhookPayload)
	if err != nil {
		return nil, err
	}
	secondary, err := config.PairWebhook("secondary", f.secondaryWebhookURL, f.secondaryWebhookPayload)
	if err != nil {
		return nil, err
	}

	return &config.NotificationContent{
		Title:                  f.title,
		Description:            f.description,
		Icon:                   f.icon,
		ButtonPrimaryText:      f.primaryText,
		ButtonPrimaryWebhook:   primary,
		ButtonSecondaryText:    f.secondaryText,
		ButtonSecondaryWebhook: secondary,
	}, nil
}

// runResolved runs the shared tail of every invocation shape: resolve the
// config, store it in the write-once cell, then either describe it
// (--dry-run) or hand it to the window host.
func runResolved(cmd *cobra.Command, opts config.Options) error {
	cfg, err := config.Resolve(opts, logger)
	if err != nil {
		return err
	}

	if err := configStore.Set(cfg); err != nil {
		return err
	}

	if globalOpts.dryRun {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to describe config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	bridge := host.NewBridge(configStore, logger)
	h, err := host.New(cfg, bridge, prefs.Opener.Command, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return h.Present(ctx)
}

// addWindowFlags registers the optional window override flags on cmd.
func addWindowFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("width", config.DefaultWidth, "Window width in pixels")
	f.Float64("height", config.DefaultHeight, "Window height in pixels")
	f.Bool("resizable", false, "Allow the window to be resized")
	f.Bool("always-on-top", true, "Keep the window above other windows")
	f.Bool("skip-taskbar", true, "Hide the window from the taskbar/dock")
	f.Bool("focus", true, "Focus the window when it opens")
	f.Bool("visible-on-all-workspaces", true, "Show the window on all virtual desktops")
	f.Bool("closable", false, "Show the close button")
	f.Bool("minimizable", false, "Show the minimize button")
	f.Bool("hidden-title", true, "Hide the window title")
	f.String("title-bar-style", config.DefaultTitleBarStyle,
		`Title bar style: "overlay", "transparent", or "visible"`)
}

// windowFlagOverrides converts the window flags actually set on cmd into an
// override layer. Unset flags stay nil so lower layers show through.
func windowFlagOverrides(cmd *cobra.Command) config.WindowOverrides {
	var o config.WindowOverrides
	f := cmd.Flags()

	if f.Changed("width") {
		v, _ := f.GetFloat64("width")
		o.Width = &v
	}
	if f.Changed("height") {
		v, _ := f.GetFloat64("height")
		o.Height = &v
	}
	if f.Changed("resizable") {
		v, _ := f.GetBool("resizable")
		o.Resizable = &v
	}
	if f.Changed("always-on-top") {
		v, _ := f.GetBool("always-on-top")
		o.AlwaysOnTop = &v
	}
	if f.Changed("skip-taskbar") {
		v, _ := f.GetBool("skip-taskbar")
		o.SkipTaskbar = &v
	}
	if f.Changed("focus") {
		v, _ := f.GetBool("focus")
		o.Focus = &v
	}
	if f.Changed("visible-on-all-workspaces") {
		v, _ := f.GetBool("visible-on-all-workspaces")
		o.VisibleOnAllWorkspaces = &v
	}
	if f.Changed("closable") {
		v, _ := f.GetBool("closable")
		o.Closable = &v
	}
	if f.Changed("minimizable") {
		v, _ := f.GetBool("minimizable")
		o.Minimizable = &v
	}
	if f.Changed("hidden-title") {
		v, _ := f.GetBool("hidden-title")
		o.HiddenTitle = &v
	}
	if f.Changed("title-bar-style") {
		v, _ := f.GetString("title-bar-style")
		o.TitleBarStyle = &v
	}

	return o
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose || (prefs != nil && prefs.Verbose) {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for --dry-run output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
