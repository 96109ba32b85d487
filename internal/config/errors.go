package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAPIConfigs indicates invalid API call settings
	// (for example, a relative endpoint or an unsupported method).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
