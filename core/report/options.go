package report

// Options control how outcomes are rendered.
type Options struct {
	// ListDuplicates expands duplicate groups into a side-by-side list
	// instead of a one-line summary.
	ListDuplicates bool

	// Color enables ANSI color escapes.
	Color bool

	// ShowRuns displays long matched runs inside reordered tables, which
	// are elided by default to keep reports readable.
	ShowRuns bool

	// BlockCap is the number of entries shown per relocated block before
	// the remainder collapses to a count; < 1 uses 10.
	BlockCap int
}

func (o Options) blockCap() int {
	if o.BlockCap < 1 {
		return 10
	}
	return o.BlockCap
}

// Config holds configuration for report rendering.
type Config struct {
	// ListDuplicates expands duplicate groups by default.
	ListDuplicates bool `mapstructure:"list_duplicates" default:"false"`
	// Color enables ANSI color output.
	Color bool `mapstructure:"color" default:"true"`
	// ShowRuns displays long matched runs in reordered tables.
	ShowRuns bool `mapstructure:"show_runs" default:"false"`
	// BlockCap is the per-block display cap.
	BlockCap int `mapstructure:"block_cap" default:"10"`
}

// Options converts the configuration into renderer options.
func (c Config) Options() Options {
	return Options{
		ListDuplicates: c.ListDuplicates,
		Color:          c.Color,
		ShowRuns:       c.ShowRuns,
		BlockCap:       c.BlockCap,
	}
}
