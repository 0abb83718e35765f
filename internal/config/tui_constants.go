package config

// Layout constants.
const (
	// GaugeWidth is the preferred width of the lap progress bar.
	GaugeWidth = 30

	// MinGaugeWidth is the narrowest the lap progress bar gets.
	MinGaugeWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Display limits.
const (
	// MaxVisibleLaps limits the lap list before older laps scroll off.
	MaxVisibleLaps = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
