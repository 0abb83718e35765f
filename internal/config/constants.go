package config

import "time"

// Timing.
const (
	// TickPeriod is both the ticker period and the increment each tick adds.
	TickPeriod = 10 * time.Millisecond
)

// Pacing configuration ranges.
const (
	MinTargetSeconds    = 0
	MaxTargetSeconds    = 59
	MinTargetTenths     = 0
	MaxTargetTenths     = 9
	MinTolerancePercent = 0
	MaxTolerancePercent = 9
)

// Pacing defaults.
const (
	DefaultTargetSeconds    = 16
	DefaultTargetTenths     = 5
	DefaultTolerancePercent = 9
)

// Settings keys.
const (
	SettingTargetSeconds    = "target_seconds"
	SettingTargetTenths     = "target_tenths"
	SettingTolerancePercent = "tolerance_percent"
	SettingTheme            = "theme"
)

// Application settings.
const (
	AppName        = "splitpace"
	DBFileName     = "splitpace.db"
	DebugLogFile   = "debug.log"
	DebugEnvVar    = "SPLITPACE_DEBUG"
	ReportFileStem = "splits"
	ReportDirName  = "splits"

	// ManualClockEnvVar switches console mode to the step clock driven by "tick N".
	ManualClockEnvVar = "SPLITPACE_MANUAL_CLOCK"
)
