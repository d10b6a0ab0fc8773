package dispatcher

// Config controls dispatcher behavior.
type Config struct {
	// RecoverFromPanic converts handler panics into error results.
	RecoverFromPanic bool

	// EnableMetrics enables per-action dispatch metrics.
	EnableMetrics bool

	// MaxRepeatCount caps the repeat count of a dispatched action.
	// Zero means no cap.
	MaxRepeatCount int
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		EnableMetrics:    false,
		MaxRepeatCount:   10000,
	}
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(enabled bool) Config {
	c.RecoverFromPanic = enabled
	return c
}

// WithMetrics returns a copy of the config with metrics collection set.
func (c Config) WithMetrics(enabled bool) Config {
	c.EnableMetrics = enabled
	return c
}

// WithMaxRepeatCount returns a copy of the config with the repeat cap set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}
