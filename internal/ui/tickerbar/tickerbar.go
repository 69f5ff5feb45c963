// Package tickerbar displays a rotating market ticker at the bottom of the screen.
package tickerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

// BorderHeight is the height of borders around the ticker bar.
const BorderHeight = 2

// Height returns the total height of the bar, 0 when there is nothing to show.
func Height(s State) int {
	if len(s.Assets) == 0 {
		return 0
	}
	return 1 + BorderHeight
}

// State holds the assets to display and the rotation offset.
type State struct {
	Assets []market.Asset
	Offset int
}

// Advance rotates the ticker by one entry.
func (s State) Advance() State {
	if len(s.Assets) > 0 {
		s.Offset = (s.Offset + 1) % len(s.Assets)
	}
	return s
}

func symbolStyle() lipgloss.Style {
	return styles.T().S().Title
}

func priceStyle() lipgloss.Style {
	return styles.T().S().Muted
}

// Render renders the ticker bar with the given width.
// Returns empty string if there are no assets.
func Render(state State, width int) string {
	if len(state.Assets) == 0 {
		return ""
	}

	innerWidth := width - 2 // account for borders
	sep := styles.T().S().Subtle.Render(" │ ")

	var b strings.Builder
	n := len(state.Assets)
	for i := range n {
		if lipgloss.Width(b.String()) >= innerWidth {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(renderEntry(state.Assets[(state.Offset+i)%n]))
	}

	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(render.Fit(b.String(), innerWidth))
}

// renderEntry renders: "BTC $67,234.5 ▲+2.31%"
func renderEntry(a market.Asset) string {
	change := styles.T().S().Change(a.Change24h)
	return symbolStyle().Render(a.Symbol) + " " +
		priceStyle().Render("$"+market.FormatPrice(a.Price)) + " " +
		change.Render(icons.Trend(a.Change24h)+market.FormatChange(a.Change24h))
}
