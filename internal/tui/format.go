package tui

import (
	"fmt"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/charmbracelet/x/ansi"
)

// FormatLapLine renders one row of the lap list.
func FormatLapLine(index int, lapMs int64, pace stopwatch.Pacing) string {
	label := pace.String()
	if label == "" {
		label = "-"
	}
	return fmt.Sprintf("%3d  %8s  %s", index, stopwatch.FormatMillis(lapMs), label)
}

// FormatTarget renders the target and tolerance, e.g. "16.50s ±9%".
func FormatTarget(cfg stopwatch.PacingConfig) string {
	return fmt.Sprintf("%ss ±%d%%", stopwatch.FormatMillis(cfg.TargetMillis()), cfg.TolerancePercent)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
