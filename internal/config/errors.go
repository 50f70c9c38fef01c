package config

import "errors"

// Resolution errors. All are fatal and propagate unchanged to the top
// level; callers match them with errors.Is. The only locally recovered
// condition, an unrecognized title bar style, is a warning rather than an
// error (see Config.Validate).
var (
	// ErrRead indicates the config file could not be read.
	ErrRead = errors.New("cannot read config file")
	// ErrParse indicates the config file is not valid YAML.
	ErrParse = errors.New("cannot parse config file")
	// ErrMissingSection indicates the config file has neither a
	// 'notification' nor a 'custom' section.
	ErrMissingSection = errors.New("config must contain either a 'notification' or 'custom' section")
	// ErrAmbiguousSection indicates the config file has both sections.
	ErrAmbiguousSection = errors.New("config must not contain both 'notification' and 'custom' sections")
	// ErrMissingField indicates a required field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrIncompleteWebhook indicates a button webhook with a url but no
	// payload, or a payload but no url.
	ErrIncompleteWebhook = errors.New("webhook url and payload must be provided together")
	// ErrInvalidURLScheme indicates a webview URL outside the allowed
	// schemes.
	ErrInvalidURLScheme = errors.New("url must start with http://, https://, or file://")
	// ErrInvalidDimension indicates a window dimension that is not a
	// positive finite number.
	ErrInvalidDimension = errors.New("window dimension must be a positive finite number")
	// ErrUnknownContentType indicates a --type value other than 'webview'
	// or 'notification'.
	ErrUnknownContentType = errors.New("unknown content type, must be 'webview' or 'notification'")
)
