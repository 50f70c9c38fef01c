package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marko-lisica/popup/internal/config"
)

var fileOpts struct {
	path string
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Display a popup described by a YAML config file",
	Long: `Display a popup described by a YAML config file.

The file must contain exactly one top-level section, either 'notification'
or 'custom'. Paths starting with ~/ are expanded to the home directory;
relative paths are resolved against the current working directory.

Examples:
  popup file --path ~/.config/popup/deploy.yaml
  popup file --path ./examples/notification.yaml`,
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(fileCmd)

	fileCmd.Flags().StringVar(&fileOpts.path, "path", "",
		"Path to the YAML config file (required)")
}

func runFile(cmd *cobra.Command, args []string) error {
	if fileOpts.path == "" {
		return fmt.Errorf("%w: --path", config.ErrMissingField)
	}

	return runResolved(cmd, config.Options{FilePath: fileOpts.path})
}
