package config

import "fmt"

// describedCustom is the custom section shape with the finalized window
// spelled out in full.
type describedCustom struct {
	URL    string       `yaml:"url"`
	Title  string       `yaml:"title,omitempty"`
	Window WindowConfig `yaml:"window"`
}

// MarshalYAML renders a resolved config in the config file schema. A
// described custom config parses back to an equivalent Config; a described
// notification omits the window, which is always the fixed template.
func (c *Config) MarshalYAML() (any, error) {
	switch content := c.Content.(type) {
	case *NotificationContent:
		return struct {
			Notification *NotificationContent `yaml:"notification"`
		}{content}, nil
	case *WebviewContent:
		return struct {
			Custom describedCustom `yaml:"custom"`
		}{describedCustom{
			URL:    content.URL,
			Title:  content.WindowTitle,
			Window: c.Window,
		}}, nil
	default:
		return nil, fmt.Errorf("unhandled content type %T", c.Content)
	}
}
