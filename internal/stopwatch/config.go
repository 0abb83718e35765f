package stopwatch

import (
	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/util"
)

// PacingConfig is the user-tunable target lap time and tolerance band.
type PacingConfig struct {
	TargetSeconds    int
	TargetTenths     int
	TolerancePercent int
}

// DefaultPacingConfig returns a 16.5 second target.
func DefaultPacingConfig() PacingConfig {
	return PacingConfig{
		TargetSeconds:    config.DefaultTargetSeconds,
		TargetTenths:     config.DefaultTargetTenths,
		TolerancePercent: config.DefaultTolerancePercent,
	}
}

// TargetMillis returns the target lap duration.
func (c PacingConfig) TargetMillis() int64 {
	return TargetMillis(c.TargetSeconds, c.TargetTenths)
}

// Validate rejects any component outside its configured range.
func (c PacingConfig) Validate() error {
	if err := ValidateTargetSeconds(c.TargetSeconds); err != nil {
		return err
	}
	if err := ValidateTargetTenths(c.TargetTenths); err != nil {
		return err
	}
	return ValidateTolerance(c.TolerancePercent)
}

// Clamp forces every component into range.
func (c PacingConfig) Clamp() PacingConfig {
	return PacingConfig{
		TargetSeconds:    util.Clamp(c.TargetSeconds, config.MinTargetSeconds, config.MaxTargetSeconds),
		TargetTenths:     util.Clamp(c.TargetTenths, config.MinTargetTenths, config.MaxTargetTenths),
		TolerancePercent: util.Clamp(c.TolerancePercent, config.MinTolerancePercent, config.MaxTolerancePercent),
	}
}

func ValidateTargetSeconds(v int) error {
	return checkRange("target seconds", v, config.MinTargetSeconds, config.MaxTargetSeconds)
}

func ValidateTargetTenths(v int) error {
	return checkRange("target tenths", v, config.MinTargetTenths, config.MaxTargetTenths)
}

func ValidateTolerance(v int) error {
	return checkRange("tolerance", v, config.MinTolerancePercent, config.MaxTolerancePercent)
}

func checkRange(field string, v, min, max int) error {
	if v < min || v > max {
		return &OpError{Op: "validate", Field: field, Err: ErrOutOfRange}
	}
	return nil
}
