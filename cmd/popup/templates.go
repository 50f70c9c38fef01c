package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available content types",
	Run: func(cmd *cobra.Command, args []string) {
		printContentTypes(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

// printContentTypes writes the content type listing shared by the templates
// subcommand and the legacy --templates flag.
func printContentTypes(w io.Writer) {
	fmt.Fprintln(w, "Available content types:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  webview       Load external webpage or local HTML file")
	fmt.Fprintln(w, "                Example: popup custom --url https://example.com")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  notification  Display a notification dialog with buttons")
	fmt.Fprintln(w, "                Example: popup notification --title 'Update' --description 'Please update'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Window settings can be customized via a YAML config file or CLI flags.")
	fmt.Fprintln(w, "Run 'popup --help' for all available options.")
}
