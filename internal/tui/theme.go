package tui

import (
	"sort"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Timer     lipgloss.Style
	Under     lipgloss.Style
	On        lipgloss.Style
	Over      lipgloss.Style
	Lap       lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 2),
		Under:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 2),
		On:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("46")).Bold(true).Padding(0, 2),
		Over:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196")).Bold(true).Padding(0, 2),
		Lap:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 2),
		Under:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("215")).Bold(true).Padding(0, 2),
		On:        lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("120")).Bold(true).Padding(0, 2),
		Over:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("210")).Bold(true).Padding(0, 2),
		Lap:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the theme key after current, wrapping around.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// PacingStyle is the timer style for a pacing class.
func (t Theme) PacingStyle(p stopwatch.Pacing) lipgloss.Style {
	switch p {
	case stopwatch.PacingUnder:
		return t.Under
	case stopwatch.PacingOn:
		return t.On
	case stopwatch.PacingOver:
		return t.Over
	default:
		return t.Timer
	}
}
