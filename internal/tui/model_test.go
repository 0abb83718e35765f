package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func setupTestModel(t *testing.T, store SettingsStore) (Model, *stopwatch.ManualTicker) {
	t.Helper()
	ticker := stopwatch.NewManualTicker()
	session, err := stopwatch.NewSession(ticker, stopwatch.DefaultPacingConfig())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	t.Cleanup(session.Close)
	t.Cleanup(func() { SetTheme("default") })
	m := NewModel(context.Background(), session, store, t.TempDir())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model), ticker
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

// syncState pulls the session's current snapshot the way the relay would.
func syncState(m Model) Model {
	next, _ := m.Update(StateMsg(m.session.State()))
	return next.(Model)
}

func TestNewModelLoadsTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("dracula", true)

	m, _ := setupTestModel(t, store)
	if m.theme != "dracula" || CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected dracula theme, got %s", m.theme)
	}
}

func TestNewModelIgnoresUnknownTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("neon", true)

	m, _ := setupTestModel(t, store)
	if m.theme != "default" {
		t.Fatalf("expected default theme, got %s", m.theme)
	}
}

func TestStartLapStopFlow(t *testing.T) {
	m, ticker := setupTestModel(t, nil)
	m = press(t, m, runeKey('s'))
	if !m.st.Running() {
		t.Fatalf("expected running after start")
	}
	ticker.Fire(100)
	m = syncState(m)
	if m.st.DisplayMs != 1000 {
		t.Fatalf("expected 1000ms displayed, got %d", m.st.DisplayMs)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if len(m.st.Laps) != 1 || m.st.Laps[0] != 1000 {
		t.Fatalf("expected one 1000ms lap, got %v", m.st.Laps)
	}
	ticker.Fire(70)
	m = press(t, m, runeKey('x'))
	if m.st.State != stopwatch.StateStopped {
		t.Fatalf("expected stopped, got %v", m.st.State)
	}
	if len(m.st.Laps) != 2 || m.st.Laps[1] != 700 {
		t.Fatalf("expected final lap 700, got %v", m.st.Laps)
	}
	if m.st.DisplayMs != 1700 {
		t.Fatalf("expected total shown when stopped, got %d", m.st.DisplayMs)
	}
}

func TestStartIgnoredWhileRunning(t *testing.T) {
	m, ticker := setupTestModel(t, nil)
	m = press(t, m, runeKey('s'))
	ticker.Fire(10)
	m = syncState(m)
	m = press(t, m, runeKey('s'))
	if m.st.ElapsedMs != 100 {
		t.Fatalf("start key while running must not reset, got %d", m.st.ElapsedMs)
	}
}

func TestLapKeyIgnoredWhenIdle(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m = press(t, m, runeKey('l'))
	if len(m.st.Laps) != 0 || m.Message != "" {
		t.Fatalf("lap while idle should be ignored, got laps=%v msg=%q", m.st.Laps, m.Message)
	}
}

func TestConfigKeysSaveSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("", false)
	want := stopwatch.DefaultPacingConfig()
	want.TargetSeconds++
	store.EXPECT().SavePacingConfig(gomock.Any(), want).Return(nil)
	want2 := want
	want2.TargetTenths--
	store.EXPECT().SavePacingConfig(gomock.Any(), want2).Return(nil)

	m, _ := setupTestModel(t, store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.st.Config.TargetSeconds != want.TargetSeconds {
		t.Fatalf("expected seconds %d, got %d", want.TargetSeconds, m.st.Config.TargetSeconds)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	if m.st.Config.TargetTenths != want2.TargetTenths {
		t.Fatalf("expected tenths %d, got %d", want2.TargetTenths, m.st.Config.TargetTenths)
	}
	if m.st.TargetMs != want2.TargetMillis() {
		t.Fatalf("expected target %d, got %d", want2.TargetMillis(), m.st.TargetMs)
	}
}

func TestConfigKeysClampAtRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("", false)
	store.EXPECT().SavePacingConfig(gomock.Any(), gomock.Any()).Return(nil).Times(0)

	m, _ := setupTestModel(t, store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldTolerance {
		t.Fatalf("expected focus to wrap to tolerance, got %v", m.focus)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.st.Config.TolerancePercent != config.MaxTolerancePercent {
		t.Fatalf("tolerance must stay at max, got %d", m.st.Config.TolerancePercent)
	}
}

func TestConfigKeysLockedWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("", false)

	m, _ := setupTestModel(t, store)
	m = press(t, m, runeKey('s'), tea.KeyMsg{Type: tea.KeyUp}, runeKey('+'), tea.KeyMsg{Type: tea.KeyTab})
	if m.st.Config != stopwatch.DefaultPacingConfig() {
		t.Fatalf("config must not change while running, got %+v", m.st.Config)
	}
	if m.focus != fieldSeconds {
		t.Fatalf("focus must not move while running")
	}
	if !strings.Contains(m.View(), "locked while running") {
		t.Fatalf("expected locked hint in view")
	}
}

func TestConfigSaveFailureShowsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("", false)
	store.EXPECT().SavePacingConfig(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	m, _ := setupTestModel(t, store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if !m.statusIsError || !strings.Contains(m.Message, "disk full") {
		t.Fatalf("expected save error in status, got %q", m.Message)
	}
	if m.st.Config.TargetSeconds != config.DefaultTargetSeconds-1 {
		t.Fatalf("session config should still change, got %d", m.st.Config.TargetSeconds)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingTheme).Return("", false)
	store.EXPECT().SetSetting(gomock.Any(), config.SettingTheme, "dracula").Return(nil)

	m, _ := setupTestModel(t, store)
	m = press(t, m, runeKey('T'))
	if m.theme != "dracula" {
		t.Fatalf("expected dracula, got %s", m.theme)
	}
	if !strings.Contains(m.Message, "Dracula") {
		t.Fatalf("expected theme status, got %q", m.Message)
	}
}

func TestStaleStateMsgIgnored(t *testing.T) {
	m, ticker := setupTestModel(t, nil)
	m = press(t, m, runeKey('s'))
	ticker.Fire(5)
	stale := m.session.State()
	ticker.Fire(5)
	m = syncState(m)
	next, _ := m.Update(StateMsg(stale))
	m = next.(Model)
	if m.st.ElapsedMs != 100 {
		t.Fatalf("stale snapshot must be ignored, got %d", m.st.ElapsedMs)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg for ctrl+c")
	}
}

func TestMessageClearsOnKeypress(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m.setStatusError("boom")
	m = press(t, m, runeKey('z'))
	if m.Message != "" || m.statusIsError {
		t.Fatalf("expected message cleared")
	}
}
