package config

// WindowOverrides is one optional-per-field layer of window settings, from
// either a file's window block or CLI window flags. A nil field means
// "inherit from the layer below", never "set to a zero value".
type WindowOverrides struct {
	Width                  *float64 `yaml:"width"`
	Height                 *float64 `yaml:"height"`
	Resizable              *bool    `yaml:"resizable"`
	AlwaysOnTop            *bool    `yaml:"always_on_top"`
	SkipTaskbar            *bool    `yaml:"skip_taskbar"`
	Focus                  *bool    `yaml:"focus"`
	VisibleOnAllWorkspaces *bool    `yaml:"visible_on_all_workspaces"`
	Closable               *bool    `yaml:"closable"`
	Minimizable            *bool    `yaml:"minimizable"`
	HiddenTitle            *bool    `yaml:"hidden_title"`
	TitleBarStyle          *string  `yaml:"title_bar_style"`
}

// Apply merges the overrides over base in a single deterministic pass. Each
// field is independent: a set override wins, an unset one keeps the base
// value. Values pass through unclamped; bounds are checked later during
// validation.
func (o *WindowOverrides) Apply(base WindowConfig) WindowConfig {
	merged := base
	if o == nil {
		return merged
	}

	if o.Width != nil {
		merged.Width = *o.Width
	}
	if o.Height != nil {
		merged.Height = *o.Height
	}
	if o.Resizable != nil {
		merged.Resizable = *o.Resizable
	}
	if o.AlwaysOnTop != nil {
		merged.AlwaysOnTop = *o.AlwaysOnTop
	}
	if o.SkipTaskbar != nil {
		merged.SkipTaskbar = *o.SkipTaskbar
	}
	if o.Focus != nil {
		merged.Focus = *o.Focus
	}
	if o.VisibleOnAllWorkspaces != nil {
		merged.VisibleOnAllWorkspaces = *o.VisibleOnAllWorkspaces
	}
	if o.Closable != nil {
		merged.Closable = *o.Closable
	}
	if o.Minimizable != nil {
		merged.Minimizable = *o.Minimizable
	}
	if o.HiddenTitle != nil {
		merged.HiddenTitle = *o.HiddenTitle
	}
	if o.TitleBarStyle != nil {
		merged.TitleBarStyle = *o.TitleBarStyle
	}

	return merged
}
