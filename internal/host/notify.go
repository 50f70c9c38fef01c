package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"github.com/marko-lisica/popup/internal/config"
	"github.com/marko-lisica/popup/internal/webhook"
)

const (
	notifyInterface = "org.freedesktop.Notifications"
	notifyPath      = dbus.ObjectPath("/org/freedesktop/Notifications")

	signalActionInvoked      = notifyInterface + ".ActionInvoked"
	signalNotificationClosed = notifyInterface + ".NotificationClosed"

	actionPrimary   = "primary"
	actionSecondary = "secondary"
)

// Button text defaults when a webhook is configured without a label.
const (
	defaultPrimaryText   = "Ok"
	defaultSecondaryText = "Cancel"
)

// NotifyHost delivers notification content through the desktop notification
// service and fires the matching button webhook when an action is invoked.
type NotifyHost struct {
	bridge     *Bridge
	dispatcher *webhook.Dispatcher
	logger     *slog.Logger
}

// NewNotifyHost creates a NotifyHost.
func NewNotifyHost(bridge *Bridge, logger *slog.Logger) *NotifyHost {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifyHost{
		bridge:     bridge,
		dispatcher: webhook.NewDispatcher(logger),
		logger:     logger,
	}
}

// Present sends the notification and blocks until an action is invoked, the
// notification is closed, or ctx is cancelled.
func (h *NotifyHost) Present(ctx context.Context) error {
	cfg, err := h.bridge.GetConfig()
	if err != nil {
		return err
	}
	content, ok := cfg.Content.(*config.NotificationContent)
	if !ok {
		return fmt.Errorf("notify host cannot present %s content", cfg.Content.ContentType())
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(notifyPath),
		dbus.WithMatchInterface(notifyInterface),
	); err != nil {
		return fmt.Errorf("subscribe to notification signals: %w", err)
	}
	signals := make(chan *dbus.Signal, 16)
	conn.Signal(signals)

	obj := conn.Object(notifyInterface, notifyPath)
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(1)),
	}

	var id uint32
	call := obj.CallWithContext(ctx, notifyInterface+".Notify", 0,
		"popup", uint32(0), content.Icon, content.Title, content.Description,
		notifyActions(content), hints, int32(-1))
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	h.logger.Debug("notification sent", "id", id, "title", content.Title)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig, open := <-signals:
			if !open {
				return nil
			}
			done, err := h.handleSignal(ctx, sig, id, content)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// handleSignal processes one notification service signal. It reports done
// when the signal concerns our notification and ends the popup's life.
func (h *NotifyHost) handleSignal(ctx context.Context, sig *dbus.Signal, id uint32, content *config.NotificationContent) (bool, error) {
	switch sig.Name {
	case signalActionInvoked:
		sigID, key, ok := parseActionInvoked(sig)
		if !ok || sigID != id {
			return false, nil
		}
		h.logger.Debug("notification action invoked", "id", id, "action", key)
		if err := h.dispatcher.Dispatch(ctx, buttonWebhook(content, key)); err != nil {
			return true, err
		}
		return true, nil
	case signalNotificationClosed:
		if len(sig.Body) > 0 {
			if closedID, ok := sig.Body[0].(uint32); ok && closedID == id {
				h.logger.Debug("notification closed", "id", id)
				return true, nil
			}
		}
	}
	return false, nil
}

// notifyActions builds the D-Bus action list (alternating key, label) for
// the notification's buttons. The primary button is always offered.
func notifyActions(content *config.NotificationContent) []string {
	primaryText := content.ButtonPrimaryText
	if primaryText == "" {
		primaryText = defaultPrimaryText
	}
	actions := []string{actionPrimary, primaryText}

	if content.ButtonSecondaryText != "" || content.ButtonSecondaryWebhook != nil {
		secondaryText := content.ButtonSecondaryText
		if secondaryText == "" {
			secondaryText = defaultSecondaryText
		}
		actions = append(actions, actionSecondary, secondaryText)
	}

	return actions
}

// buttonWebhook returns the webhook configured for the invoked action key,
// or nil when the button has none.
func buttonWebhook(content *config.NotificationContent, key string) *config.WebhookConfig {
	switch key {
	case actionPrimary:
		return content.ButtonPrimaryWebhook
	case actionSecondary:
		return content.ButtonSecondaryWebhook
	default:
		return nil
	}
}

// parseActionInvoked extracts the notification ID and action key from an
// ActionInvoked signal body.
func parseActionInvoked(sig *dbus.Signal) (uint32, string, bool) {
	if len(sig.Body) < 2 {
		return 0, "", false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return 0, "", false
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return 0, "", false
	}
	return id, key, true
}
