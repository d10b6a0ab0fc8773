package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidDocument indicates the settings file is not valid JSON.
	ErrInvalidDocument = errors.New("invalid JSON document")

	// ErrInvalidValue indicates a setting holds an unusable value.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrNoPath indicates a save was attempted on an in-memory config.
	ErrNoPath = errors.New("config has no backing file")
)
