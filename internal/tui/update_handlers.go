package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/report"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/akyairhashvil/splitpace/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

var editable = []stopwatch.TimingState{stopwatch.StateIdle, stopwatch.StateStopped}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "s", Handler: handleStart, Description: "Start", States: editable})
	r.Register(KeyBinding{Key: "enter", Handler: handleStart, States: editable})
	r.Register(KeyBinding{Key: " ", Handler: handleLap, Description: "Lap", States: []stopwatch.TimingState{stopwatch.StateRunning}})
	r.Register(KeyBinding{Key: "l", Handler: handleLap, States: []stopwatch.TimingState{stopwatch.StateRunning}})
	r.Register(KeyBinding{Key: "x", Handler: handleStop, Description: "Stop"})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocusNext, Description: "Field", States: editable})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocusPrev, States: editable})
	r.Register(KeyBinding{Key: "up", Handler: handleIncrement, Description: "+1", States: editable})
	r.Register(KeyBinding{Key: "+", Handler: handleIncrement, States: editable})
	r.Register(KeyBinding{Key: "k", Handler: handleIncrement, States: editable})
	r.Register(KeyBinding{Key: "down", Handler: handleDecrement, Description: "-1", States: editable})
	r.Register(KeyBinding{Key: "-", Handler: handleDecrement, States: editable})
	r.Register(KeyBinding{Key: "j", Handler: handleDecrement, States: editable})
	r.Register(KeyBinding{Key: "e", Handler: handleExport, Description: "Export", States: editable})
	r.Register(KeyBinding{Key: "pgup", Handler: handleScrollOlder, Description: "Older laps"})
	r.Register(KeyBinding{Key: "[", Handler: handleScrollOlder})
	r.Register(KeyBinding{Key: "pgdown", Handler: handleScrollNewer, Description: "Newer laps"})
	r.Register(KeyBinding{Key: "]", Handler: handleScrollNewer})
	r.Register(KeyBinding{Key: "T", Handler: handleTheme, Description: "Theme"})
	r.Register(KeyBinding{Key: "q", Description: "Quit", Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		return m, tea.Quit, true
	}})
	return r
}

// dispatch sends cmd to the session and folds the result into the model.
func (m Model) dispatch(cmd stopwatch.Command) (Model, tea.Cmd) {
	st, err := m.session.Dispatch(cmd)
	m.applyState(st)
	if err != nil {
		if errors.Is(err, stopwatch.ErrInvalidBoundary) {
			util.LogError("session", err)
			m.err = err
			return m, tea.Quit
		}
		m.setStatusError(err.Error())
	}
	return m, nil
}

func handleStart(m Model, _ string) (Model, tea.Cmd, bool) {
	m.lapScroll = 0
	next, cmd := m.dispatch(stopwatch.StartCommand)
	return next, cmd, true
}

func handleLap(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.dispatch(stopwatch.LapCommand)
	return next, cmd, true
}

func handleStop(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.dispatch(stopwatch.StopCommand)
	return next, cmd, true
}

// maxLapScroll is the furthest the lap list can scroll back.
func (m Model) maxLapScroll() int {
	if n := len(m.st.Laps) - config.MaxVisibleLaps; n > 0 {
		return n
	}
	return 0
}

func handleScrollOlder(m Model, _ string) (Model, tea.Cmd, bool) {
	m.lapScroll = util.Clamp(m.lapScroll+config.MaxVisibleLaps, 0, m.maxLapScroll())
	return m, nil, true
}

func handleScrollNewer(m Model, _ string) (Model, tea.Cmd, bool) {
	m.lapScroll = util.Clamp(m.lapScroll-config.MaxVisibleLaps, 0, m.maxLapScroll())
	return m, nil, true
}

func handleFocusNext(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = (m.focus + 1) % fieldCount
	return m, nil, true
}

func handleFocusPrev(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = (m.focus + fieldCount - 1) % fieldCount
	return m, nil, true
}

func handleIncrement(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.adjustFocused(1)
	return next, cmd, true
}

func handleDecrement(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.adjustFocused(-1)
	return next, cmd, true
}

// adjustFocused moves the focused input by delta, clamped to its range like
// a slider, and persists the result.
func (m Model) adjustFocused(delta int) (Model, tea.Cmd) {
	cfg := m.st.Config
	var cmd stopwatch.Command
	switch m.focus {
	case fieldSeconds:
		v := util.Clamp(cfg.TargetSeconds+delta, config.MinTargetSeconds, config.MaxTargetSeconds)
		if v == cfg.TargetSeconds {
			return m, nil
		}
		cmd = stopwatch.SetTargetSeconds(v)
	case fieldTenths:
		v := util.Clamp(cfg.TargetTenths+delta, config.MinTargetTenths, config.MaxTargetTenths)
		if v == cfg.TargetTenths {
			return m, nil
		}
		cmd = stopwatch.SetTargetTenths(v)
	default:
		v := util.Clamp(cfg.TolerancePercent+delta, config.MinTolerancePercent, config.MaxTolerancePercent)
		if v == cfg.TolerancePercent {
			return m, nil
		}
		cmd = stopwatch.SetTolerance(v)
	}

	next, teaCmd := m.dispatch(cmd)
	if next.statusIsError || next.err != nil || next.store == nil {
		return next, teaCmd
	}
	if err := next.store.SavePacingConfig(next.ctx, next.st.Config); err != nil {
		util.LogError("save pacing config", err)
		next.setStatusError(fmt.Sprintf("Settings not saved: %v", err))
	}
	return next, teaCmd
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	dir := m.reportDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatusError(fmt.Sprintf("Export failed: %v", err))
		return m, nil, true
	}
	now := m.now()
	path := report.DefaultPath(dir, now)
	if err := report.WriteSplits(path, m.st, now); err != nil {
		util.LogError("export splits", err)
		m.setStatusError(fmt.Sprintf("Export failed: %v", err))
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("Export saved: %s", path))
	return m, nil, true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	m.theme = nextTheme(m.theme)
	SetTheme(m.theme)
	if m.store != nil {
		if err := m.store.SetSetting(m.ctx, config.SettingTheme, m.theme); err != nil {
			util.LogError("save theme", err)
		}
	}
	m.setStatus("Theme: " + CurrentTheme.Name)
	return m, nil, true
}
