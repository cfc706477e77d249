package schedule

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/St0ckfish/stockfish-components/theme"
)

// Styles holds the lipgloss styles for the grid widget, derived from a
// theme palette.
type Styles struct {
	Title      lipgloss.Style
	DayHeader  lipgloss.Style
	TimeColumn lipgloss.Style
	Timezone   lipgloss.Style

	EmptyCell    lipgloss.Style
	EventCard    lipgloss.Style
	EventOverlap lipgloss.Style
	EventCursor  lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Menu       lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles derives widget styles from a palette.
func NewStyles(p *theme.Palette) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		DayHeader: lipgloss.NewStyle().
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Bold(true).
			Align(lipgloss.Center),
		TimeColumn: lipgloss.NewStyle().
			Foreground(p.FgMuted),
		Timezone: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Italic(true),

		EmptyCell: lipgloss.NewStyle().
			Foreground(p.Gridline),
		EventCard: lipgloss.NewStyle().
			Foreground(p.TextOnEvent).
			Background(p.EventBg),
		EventOverlap: lipgloss.NewStyle().
			Foreground(p.TextOnWarning).
			Background(p.EventWarningBg).
			Bold(true),
		EventCursor: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgHighlight).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Warning).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(p.FgMuted),
	}
}
