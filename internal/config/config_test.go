package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWindowConfig(t *testing.T) {
	w := DefaultWindowConfig()

	assert.Equal(t, 800.0, w.Width)
	assert.Equal(t, 600.0, w.Height)
	assert.False(t, w.Resizable)
	assert.True(t, w.AlwaysOnTop)
	assert.True(t, w.SkipTaskbar)
	assert.True(t, w.Focus)
	assert.True(t, w.VisibleOnAllWorkspaces)
	assert.False(t, w.Closable)
	assert.False(t, w.Minimizable)
	assert.True(t, w.HiddenTitle)
	assert.Equal(t, "overlay", w.TitleBarStyle)
}

func TestNotificationWindowTemplate(t *testing.T) {
	w := NotificationWindowTemplate()

	assert.Equal(t, 500.0, w.Width)
	assert.Equal(t, 300.0, w.Height)
	assert.False(t, w.Resizable)
	assert.True(t, w.AlwaysOnTop)
	assert.True(t, w.SkipTaskbar)
	assert.True(t, w.Focus)
	assert.True(t, w.VisibleOnAllWorkspaces)
	assert.False(t, w.Closable)
	assert.False(t, w.Minimizable)
	assert.True(t, w.HiddenTitle)
	assert.Equal(t, "overlay", w.TitleBarStyle)
}

func TestPairWebhook(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		payload string
		want    *WebhookConfig
		wantErr error
	}{
		{
			name: "both absent",
		},
		{
			name:    "both present",
			url:     "https://hooks.example.com/a",
			payload: `{"ok":true}`,
			want:    &WebhookConfig{URL: "https://hooks.example.com/a", Payload: `{"ok":true}`},
		},
		{
			name:    "url without payload",
			url:     "https://hooks.example.com/a",
			wantErr: ErrIncompleteWebhook,
		},
		{
			name:    "payload without url",
			payload: `{"ok":true}`,
			wantErr: ErrIncompleteWebhook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PairWebhook("primary", tt.url, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_URLScheme(t *testing.T) {
	for _, url := range []string{
		"https://example.com",
		"http://localhost:8080",
		"file:///home/me/page.html",
	} {
		cfg := &Config{
			Content: &WebviewContent{URL: url},
			Window:  DefaultWindowConfig(),
		}
		assert.NoError(t, cfg.Validate(nil), url)
	}

	cfg := &Config{
		Content: &WebviewContent{URL: "ftp://example.com"},
		Window:  DefaultWindowConfig(),
	}
	assert.ErrorIs(t, cfg.Validate(nil), ErrInvalidURLScheme)
}

func TestValidate_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		ok     bool
	}{
		{"positive", 320, 240, true},
		{"zero width", 0, 240, false},
		{"negative height", 320, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := DefaultWindowConfig()
			window.Width = tt.width
			window.Height = tt.height
			cfg := &Config{
				Content: &WebviewContent{URL: "https://example.com"},
				Window:  window,
			}

			err := cfg.Validate(nil)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDimension)
			}
		})
	}
}

func TestValidate_NormalizesTitleBarStyle(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"overlay", "overlay"},
		{"transparent", "transparent"},
		{"visible", "visible"},
		{"Visible", "visible"},
		{" overlay ", "overlay"},
		{"fancy", "overlay"}, // unknown falls back, not an error
		{"", "overlay"},
	}

	for _, tt := range tests {
		window := DefaultWindowConfig()
		window.TitleBarStyle = tt.style
		cfg := &Config{
			Content: &WebviewContent{URL: "https://example.com"},
			Window:  window,
		}

		require.NoError(t, cfg.Validate(nil), tt.style)
		assert.Equal(t, tt.want, cfg.Window.TitleBarStyle, tt.style)
	}
}

func TestValidate_NotificationWebhooks(t *testing.T) {
	base := func() *NotificationContent {
		return &NotificationContent{Title: "Update", Description: "Now"}
	}

	cfg := &Config{Content: base(), Window: NotificationWindowTemplate()}
	assert.NoError(t, cfg.Validate(nil))

	content := base()
	content.ButtonPrimaryWebhook = &WebhookConfig{URL: "https://hooks.example.com/a"}
	cfg = &Config{Content: content, Window: NotificationWindowTemplate()}
	assert.ErrorIs(t, cfg.Validate(nil), ErrIncompleteWebhook)

	content = base()
	content.ButtonSecondaryWebhook = &WebhookConfig{Payload: `{"x":1}`}
	cfg = &Config{Content: content, Window: NotificationWindowTemplate()}
	assert.ErrorIs(t, cfg.Validate(nil), ErrIncompleteWebhook)

	content = base()
	content.ButtonPrimaryWebhook = &WebhookConfig{URL: "https://hooks.example.com/a", Payload: `{"x":1}`}
	content.ButtonSecondaryWebhook = &WebhookConfig{URL: "https://hooks.example.com/b", Payload: `{"y":2}`}
	cfg = &Config{Content: content, Window: NotificationWindowTemplate()}
	assert.NoError(t, cfg.Validate(nil))
}

func TestValidate_NotificationRequiredFields(t *testing.T) {
	cfg := &Config{
		Content: &NotificationContent{Description: "Now"},
		Window:  NotificationWindowTemplate(),
	}
	assert.ErrorIs(t, cfg.Validate(nil), ErrMissingField)

	cfg = &Config{
		Content: &NotificationContent{Title: "Update"},
		Window:  NotificationWindowTemplate(),
	}
	assert.ErrorIs(t, cfg.Validate(nil), ErrMissingField)
}
