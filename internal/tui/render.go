package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/akyairhashvil/splitpace/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("split") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("pace")
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress any key to quit.", m.err)
	}
	if m.width == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderSettings(),
		"",
		m.renderTimer(),
		m.renderLapGauge(),
		"",
		m.renderLaps(),
		"",
		m.renderFooter(),
	)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
	return CurrentTheme.Base.Render(frame.Render(body))
}

func (m Model) renderHeader() string {
	state := CurrentTheme.Dim.Render(m.st.State.String())
	if m.st.Running() {
		state = CurrentTheme.Focused.Render(m.st.State.String())
	}
	target := CurrentTheme.Highlight.Render("target " + FormatTarget(m.st.Config))
	return fmt.Sprintf("%s | %s | %s", renderLogo(), state, target)
}

func (m Model) fieldValue(f configField) (value, min, max int) {
	cfg := m.st.Config
	switch f {
	case fieldTenths:
		return cfg.TargetTenths, config.MinTargetTenths, config.MaxTargetTenths
	case fieldTolerance:
		return cfg.TolerancePercent, config.MinTolerancePercent, config.MaxTolerancePercent
	default:
		return cfg.TargetSeconds, config.MinTargetSeconds, config.MaxTargetSeconds
	}
}

func (m Model) renderSettings() string {
	locked := m.st.Running()
	var rows []string
	for f := configField(0); f < fieldCount; f++ {
		value, min, max := m.fieldValue(f)
		pct := 0.0
		if max > min {
			pct = float64(value-min) / float64(max-min)
		}
		suffix := ""
		if f == fieldTolerance {
			suffix = "%"
		}
		label := fmt.Sprintf("%-9s", f.label())
		row := fmt.Sprintf("%s %s %2d%s", label, m.progress.ViewAs(pct), value, suffix)

		switch {
		case locked:
			row = CurrentTheme.Dim.Render("  " + row)
		case f == m.focus:
			row = CurrentTheme.Focused.Render("> ") + row
		default:
			row = "  " + row
		}
		rows = append(rows, row)
	}
	if locked {
		rows = append(rows, CurrentTheme.Dim.Render("  (locked while running)"))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTimer() string {
	return CurrentTheme.PacingStyle(m.st.Pacing).Render(stopwatch.FormatMillis(m.st.DisplayMs))
}

// renderLapGauge shows how much of the target the open lap has used.
func (m Model) renderLapGauge() string {
	if !m.st.Running() || m.st.TargetMs <= 0 {
		return ""
	}
	pct := float64(m.st.CurrentLapMs()) / float64(m.st.TargetMs)
	if pct > 1 {
		pct = 1
	}
	return fmt.Sprintf("lap %d %s", len(m.st.Laps)+1, m.progress.ViewAs(pct))
}

func (m Model) renderLaps() string {
	total := len(m.st.Laps)
	if total == 0 {
		return CurrentTheme.Dim.Render("No laps yet.")
	}
	width := m.width - 8
	end := total - util.Clamp(m.lapScroll, 0, m.maxLapScroll())
	start := end - config.MaxVisibleLaps
	if start < 0 {
		start = 0
	}
	var rows []string
	if start > 0 {
		rows = append(rows, CurrentTheme.Dim.Render(fmt.Sprintf("  … %d earlier", start)))
	}
	for i := start; i < end; i++ {
		lap := m.st.Laps[i]
		pace := stopwatch.Classify(lap, m.st.TargetMs, m.st.Config.TolerancePercent)
		rows = append(rows, CurrentTheme.Lap.Render(truncateLabel(FormatLapLine(i+1, lap, pace), width)))
	}
	if end < total {
		rows = append(rows, CurrentTheme.Dim.Render(fmt.Sprintf("  … %d later", total-end)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderFooter() string {
	if m.Message != "" {
		if m.statusIsError {
			return CurrentTheme.Error.Render(m.Message)
		}
		return CurrentTheme.Focused.Render(m.Message)
	}
	return CurrentTheme.Dim.Render(truncateLabel(m.keys.HelpFor(m.st.State), m.width-8))
}
