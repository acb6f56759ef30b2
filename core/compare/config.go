package compare

// Config holds configuration for the comparison engine.
type Config struct {
	// Window is the block aligner forward lookahead in entries.
	Window int `mapstructure:"window" default:"50"`
}

// Options converts the configuration into per-call engine options.
func (c Config) Options() Options {
	return Options{Window: c.Window}
}
