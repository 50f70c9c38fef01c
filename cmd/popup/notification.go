package main

import (
	"github.com/spf13/cobra"

	"github.com/marko-lisica/popup/internal/config"
)

var notificationOpts notificationFlags

var notificationCmd = &cobra.Command{
	Use:   "notification",
	Short: "Display a notification popup with buttons",
	Long: `Display a notification popup with a title, description, and up to two
buttons. Each button can fire a webhook (URL plus payload) when pressed.

Notification popups use a fixed window layout; window flags supplied
alongside them are ignored.

Examples:
  # Simple notification
  popup notification --title "Update" --description "A new version is available"

  # Notification with a webhook-wired confirm button
  popup notification --title "Deploy" --description "Ship release 1.4.2?" \
    --button-primary-text "Deploy" \
    --button-primary-webhook-url https://hooks.example.com/deploy \
    --button-primary-webhook-payload '{"release":"1.4.2"}'`,
	RunE: runNotification,
}

func init() {
	rootCmd.AddCommand(notificationCmd)

	f := notificationCmd.Flags()
	f.StringVar(&notificationOpts.title, "title", "",
		"Notification title (required)")
	f.StringVar(&notificationOpts.description, "description", "",
		"Notification description (required)")
	f.StringVar(&notificationOpts.icon, "icon", "",
		"Icon URL or file path")
	f.StringVar(&notificationOpts.primaryText, "button-primary-text", "",
		`Primary button text (default "Ok")`)
	f.StringVar(&notificationOpts.primaryWebhookURL, "button-primary-webhook-url", "",
		"Primary button webhook URL")
	f.StringVar(&notificationOpts.primaryWebhookPayload, "button-primary-webhook-payload", "",
		"Primary button webhook payload (JSON string)")
	f.StringVar(&notificationOpts.secondaryText, "button-secondary-text", "",
		`Secondary button text (default "Cancel")`)
	f.StringVar(&notificationOpts.secondaryWebhookURL, "button-secondary-webhook-url", "",
		"Secondary button webhook URL")
	f.StringVar(&notificationOpts.secondaryWebhookPayload, "button-secondary-webhook-payload", "",
		"Secondary button webhook payload (JSON string)")

	addWindowFlags(notificationCmd)
}

func runNotification(cmd *cobra.Command, args []string) error {
	content, err := notificationContentFromFlags(notificationOpts)
	if err != nil {
		return err
	}

	return runResolved(cmd, config.Options{
		Content: content,
		Window:  windowFlagOverrides(cmd),
	})
}
