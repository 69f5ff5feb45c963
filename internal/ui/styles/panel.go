package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the section panel style. Active panels use the focus
// border color.
func PanelStyle(active bool) lipgloss.Style {
	t := T()
	border := t.Border
	if active {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border)
}
