package config

import "errors"

// Sentinel errors for settings operations.
var (
	// ErrUnsupportedFormat is returned for settings files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported settings format")

	// ErrRead is returned when the settings file cannot be read.
	ErrRead = errors.New("settings read error")

	// ErrParse is returned when the settings file is malformed.
	ErrParse = errors.New("settings parse error")

	// ErrInvalidGuidelines is returned when length bounds are out of order.
	ErrInvalidGuidelines = errors.New("invalid length guidelines")
)
