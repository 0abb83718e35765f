package tui

import (
	"context"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
)

// SettingsStore is the persistence the TUI needs.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	SavePacingConfig(ctx context.Context, cfg stopwatch.PacingConfig) error
}
