package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marko-lisica/popup/internal/config"
)

var customOpts struct {
	url   string
	title string
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Display a webview popup for a URL",
	Long: `Display a popup window loading an external webpage or a local HTML file.

The URL must start with http://, https://, or file://. Window flags override
the built-in defaults field by field.

Examples:
  popup custom --url https://example.com
  popup custom --url http://localhost:8080 --title "Dashboard" --width 1024 --height 768
  popup custom --url file:///home/me/status.html --resizable`,
	RunE: runCustom,
}

func init() {
	rootCmd.AddCommand(customCmd)

	f := customCmd.Flags()
	f.StringVar(&customOpts.url, "url", "",
		"URL to load (required)")
	f.StringVar(&customOpts.title, "title", "",
		"Window title")

	addWindowFlags(customCmd)
}

func runCustom(cmd *cobra.Command, args []string) error {
	if customOpts.url == "" {
		return fmt.Errorf("%w: --url", config.ErrMissingField)
	}

	return runResolved(cmd, config.Options{
		Content: &config.WebviewContent{
			URL:         customOpts.url,
			WindowTitle: customOpts.title,
		},
		Window: windowFlagOverrides(cmd),
	})
}
