package database

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
)

// LoadPacingConfig reads the stored target and tolerance. Missing keys keep
// their defaults. Unparseable or out-of-range values are logged and replaced
// by defaults so a damaged row never blocks startup.
func (d *Database) LoadPacingConfig(ctx context.Context) (stopwatch.PacingConfig, error) {
	cfg := stopwatch.DefaultPacingConfig()
	fields := []struct {
		key      string
		dst      *int
		validate func(int) error
	}{
		{config.SettingTargetSeconds, &cfg.TargetSeconds, stopwatch.ValidateTargetSeconds},
		{config.SettingTargetTenths, &cfg.TargetTenths, stopwatch.ValidateTargetTenths},
		{config.SettingTolerancePercent, &cfg.TolerancePercent, stopwatch.ValidateTolerance},
	}
	for _, f := range fields {
		raw, err := d.LookupSetting(ctx, f.key)
		if errors.Is(err, ErrSettingNotFound) {
			continue
		}
		if err != nil {
			return stopwatch.DefaultPacingConfig(), err
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			err = f.validate(n)
		}
		if err != nil {
			log.Printf("settings: ignoring %s=%q: %v", f.key, raw, wrapSettingErr("load", f.key, ErrInvalidSetting))
			continue
		}
		*f.dst = n
	}
	return cfg, nil
}

// SavePacingConfig stores all three components atomically.
func (d *Database) SavePacingConfig(ctx context.Context, cfg stopwatch.PacingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return d.SetSettings(ctx, map[string]string{
		config.SettingTargetSeconds:    strconv.Itoa(cfg.TargetSeconds),
		config.SettingTargetTenths:     strconv.Itoa(cfg.TargetTenths),
		config.SettingTolerancePercent: strconv.Itoa(cfg.TolerancePercent),
	})
}
