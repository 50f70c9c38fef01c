package config

import "fmt"

// rawDocument is the top-level shape of the YAML config file. Exactly one
// of the two sections must be present.
type rawDocument struct {
	Notification *rawNotification `yaml:"notification"`
	Custom       *rawCustom       `yaml:"custom"`
}

type rawNotification struct {
	Title                  string         `yaml:"title"`
	Description            string         `yaml:"description"`
	Icon                   string         `yaml:"icon"`
	ButtonPrimaryText      string         `yaml:"button_primary_text"`
	ButtonPrimaryWebhook   *WebhookConfig `yaml:"button_primary_webhook"`
	ButtonSecondaryText    string         `yaml:"button_secondary_text"`
	ButtonSecondaryWebhook *WebhookConfig `yaml:"button_secondary_webhook"`
}

type rawCustom struct {
	URL    string           `yaml:"url"`
	Title  string           `yaml:"title"`
	Window *WindowOverrides `yaml:"window"`
}

// mapDocument converts the raw YAML tree into a Config with one content
// variant and a baseline window. A notification section always gets the
// fixed window template; any window block inside it is discarded. A custom
// section's window block is merged over the defaults.
func mapDocument(doc *rawDocument) (*Config, error) {
	switch {
	case doc.Notification == nil && doc.Custom == nil:
		return nil, ErrMissingSection
	case doc.Notification != nil && doc.Custom != nil:
		return nil, ErrAmbiguousSection
	case doc.Notification != nil:
		return mapNotification(doc.Notification)
	default:
		return mapCustom(doc.Custom)
	}
}

func mapNotification(raw *rawNotification) (*Config, error) {
	if raw.Title == "" {
		return nil, fmt.Errorf("%w: notification.title", ErrMissingField)
	}
	if raw.Description == "" {
		return nil, fmt.Errorf("%w: notification.description", ErrMissingField)
	}

	return &Config{
		Content: &NotificationContent{
			Title:                  raw.Title,
			Description:            raw.Description,
			Icon:                   raw.Icon,
			ButtonPrimaryText:      raw.ButtonPrimaryText,
			ButtonPrimaryWebhook:   raw.ButtonPrimaryWebhook,
			ButtonSecondaryText:    raw.ButtonSecondaryText,
			ButtonSecondaryWebhook: raw.ButtonSecondaryWebhook,
		},
		Window: NotificationWindowTemplate(),
	}, nil
}

func mapCustom(raw *rawCustom) (*Config, error) {
	if raw.URL == "" {
		return nil, fmt.Errorf("%w: custom.url", ErrMissingField)
	}

	return &Config{
		Content: &WebviewContent{
			URL:         raw.URL,
			WindowTitle: raw.Title,
		},
		Window: raw.Window.Apply(DefaultWindowConfig()),
	}, nil
}
