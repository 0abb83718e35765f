package database

import (
	"context"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
)

// SettingsRepository defines the settings operations the application uses.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	LoadPacingConfig(ctx context.Context) (stopwatch.PacingConfig, error)
	SavePacingConfig(ctx context.Context, cfg stopwatch.PacingConfig) error
}

var _ SettingsRepository = (*Database)(nil)
