package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Neon green - active section, headings
	Secondary lipgloss.Color // Cyan - keys, links
	Accent    lipgloss.Color // Magenta - palette, highlights

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color // Selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Up      lipgloss.Color // Price up, online
	Down    lipgloss.Color // Price down, errors
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style // Section headings
	Key     lipgloss.Style // Key hints
	Active  lipgloss.Style // Active sidebar entry
	Cursor  lipgloss.Style
	Up      lipgloss.Style
	Down    lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#00ff9c"),
	Secondary: lipgloss.Color("#00e5ff"),
	Accent:    lipgloss.Color("#ff2bd6"),

	FgBase:   lipgloss.Color("#c8d3d5"),
	FgMuted:  lipgloss.Color("#7a8a8f"),
	FgSubtle: lipgloss.Color("#46545a"),

	BgBase:   lipgloss.Color("#0a0f12"),
	BgCursor: lipgloss.Color("#15303a"),

	Border:      lipgloss.Color("#1f3a44"),
	BorderFocus: lipgloss.Color("#00ff9c"),

	Up:      lipgloss.Color("#00ff9c"),
	Down:    lipgloss.Color("#ff3b5c"),
	Warning: lipgloss.Color("#ffb020"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.Primary),
		Up:      lipgloss.NewStyle().Foreground(t.Up),
		Down:    lipgloss.NewStyle().Foreground(t.Down),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Change returns the up or down style for a signed change.
func (s *Styles) Change(v float64) lipgloss.Style {
	if v < 0 {
		return s.Down
	}
	return s.Up
}
