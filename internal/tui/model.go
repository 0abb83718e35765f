package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// configField is the pacing input that has keyboard focus.
type configField int

const (
	fieldSeconds configField = iota
	fieldTenths
	fieldTolerance
	fieldCount
)

func (f configField) label() string {
	switch f {
	case fieldTenths:
		return "Tenths"
	case fieldTolerance:
		return "Tolerance"
	default:
		return "Seconds"
	}
}

// Model is the root bubbletea model. It only reads timing state from
// session snapshots; every change goes through session.Dispatch.
type Model struct {
	ctx       context.Context
	session   *stopwatch.Session
	store     SettingsStore
	keys      *HandlerRegistry
	st        stopwatch.SessionState
	focus     configField
	// lapScroll is how many of the newest laps are scrolled out of view.
	lapScroll int
	progress  progress.Model
	theme     string
	reportDir string
	now       func() time.Time

	Message       string
	statusIsError bool
	err           error
	width, height int
}

// NewModel builds the UI for session. store may be nil, in which case
// settings are neither loaded nor saved.
func NewModel(ctx context.Context, session *stopwatch.Session, store SettingsStore, reportDir string) Model {
	m := Model{
		ctx:       ctx,
		session:   session,
		store:     store,
		keys:      defaultBindings(),
		st:        session.State(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:     "default",
		reportDir: reportDir,
		now:       time.Now,
	}
	m.progress.Width = config.GaugeWidth
	if store != nil {
		if name, ok := store.GetSetting(ctx, config.SettingTheme); ok {
			if _, known := Themes[name]; known {
				m.theme = name
			}
		}
	}
	SetTheme(m.theme)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case StateMsg:
		m.applyState(stopwatch.SessionState(msg))
		return m, nil
	case tea.KeyMsg:
		if m.err != nil {
			return m, tea.Quit
		}
		// Clear transient messages on keypress
		m.Message = ""
		m.statusIsError = false

		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		next, cmd, _ := m.keys.Handle(m, key)
		return next, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.GaugeWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 3
		}
		if target < config.MinGaugeWidth {
			target = config.MinGaugeWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

// applyState keeps the newest snapshot. Deliveries from the ticker can
// arrive after a snapshot returned directly by Dispatch.
func (m *Model) applyState(st stopwatch.SessionState) {
	if st.Revision < m.st.Revision {
		return
	}
	m.st = st
}

func (m *Model) setStatus(msg string) {
	m.Message = msg
	m.statusIsError = false
}

func (m *Model) setStatusError(msg string) {
	m.Message = msg
	m.statusIsError = true
}

// State returns the snapshot the model is currently rendering.
func (m Model) State() stopwatch.SessionState {
	return m.st
}
