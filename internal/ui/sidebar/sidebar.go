// Package sidebar renders the section navigation rail.
package sidebar

import (
	"strings"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

// Entry is one navigable section.
type Entry struct {
	ID    string
	Label string
	Key   string // jump shortcut, shown when expanded
}

// Render draws the sidebar as exactly height lines of the given width
// (border included). Collapsed rails show icons only, falling back to the
// label's first letter when the icon set is empty.
func Render(entries []Entry, active string, width, height int, collapsed bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := styles.T().S()
	inner := width - 1 // right border

	lines := make([]string, 0, height)
	if !collapsed {
		lines = append(lines, s.Heading.Render(render.Fit(" SECTIONS", inner)), "")
	} else {
		lines = append(lines, "")
	}

	for _, e := range entries {
		lines = append(lines, renderEntry(e, e.ID == active, inner, collapsed))
	}

	lines = render.FitLines(lines, inner, height)
	border := s.Subtle.Render("│")
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
		b.WriteString(border)
	}
	return b.String()
}

func renderEntry(e Entry, active bool, width int, collapsed bool) string {
	s := styles.T().S()

	marker := "  "
	if active {
		marker = "▌ "
	}

	var text string
	if collapsed {
		icon := strings.TrimSpace(icons.Section(e.ID))
		if icon == "" && e.Label != "" {
			icon = e.Label[:1]
		}
		text = marker + icon
	} else {
		label := marker + icons.FormatSection(e.ID, e.Label)
		if e.Key != "" {
			label = render.Row(label, e.Key+" ", width)
		}
		text = label
	}

	text = render.Fit(text, width)
	if active {
		return s.Active.Render(text)
	}
	return s.Muted.Render(text)
}
