// Package headerbar renders the single-line header of the dashboard.
package headerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is everything the header shows.
type Info struct {
	NodeName   string
	Now        time.Time
	Uptime     time.Duration
	PaletteKey string // empty hides the hint
	Live       bool   // market data source
}

func separator() string {
	return styles.T().S().Subtle.Render(" │ ")
}

// Render returns the header bar string for the given width.
// Segments on the right are dropped from the front when space runs out,
// the clock always survives.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := styles.ApplyBoldGradient("◆ "+info.NodeName+" SYSTEM NODE", t.Primary, t.Secondary)

	source := s.Muted.Render("MOCK")
	if info.Live {
		source = s.Up.Render("LIVE")
	}

	segments := []string{
		s.Key.Render(info.PaletteKey) + s.Muted.Render(" commands"),
		source,
		s.Muted.Render("UP ") + s.Base.Render(telemetry.FormatUptime(info.Uptime)),
		s.Title.Render(info.Now.UTC().Format("15:04:05")) + s.Muted.Render(" UTC"),
	}
	if info.PaletteKey == "" {
		segments = segments[1:]
	}

	right := strings.Join(segments, separator())
	for len(segments) > 1 && lipgloss.Width(title)+lipgloss.Width(right)+1 > width {
		segments = segments[1:]
		right = strings.Join(segments, separator())
	}

	return render.Fit(render.Row(title, right, width), width)
}
