package tui

import (
	"context"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
// Ticks reach the UI through a session subscription.
func Run(ctx context.Context, session *stopwatch.Session, store SettingsStore, reportDir string) error {
	m := NewModel(ctx, session, store, reportDir)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	r := newRelay(p.Send)
	unsubscribe := session.Subscribe(r.Offer)
	defer func() {
		unsubscribe()
		r.Close()
	}()

	final, err := p.Run()
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return err
}
