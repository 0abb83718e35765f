package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// States limits the binding to these timing states; empty means all.
	States   []stopwatch.TimingState
	Priority int
}

func (b KeyBinding) AppliesTo(state stopwatch.TimingState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.st.State) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state stopwatch.TimingState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(state stopwatch.TimingState) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(state) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
