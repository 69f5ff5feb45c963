package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/content"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

var entryTypes = []content.EntryType{
	content.EntryBuild,
	content.EntryExperiment,
	content.EntryObservation,
	content.EntryThought,
}

func entryStyle(t content.EntryType) lipgloss.Style {
	s := styles.T().S()
	switch t {
	case content.EntryBuild:
		return s.Up
	case content.EntryExperiment:
		return s.Key
	case content.EntryObservation:
		return s.Warning
	default:
		return lipgloss.NewStyle().Foreground(styles.T().Accent)
	}
}

func renderLog(d Data, width int) []string {
	s := styles.T().S()
	c := d.Content

	counts := c.CountByType()
	tally := make([]string, 0, len(entryTypes))
	for _, t := range entryTypes {
		tally = append(tally, entryStyle(t).Render(strings.ToUpper(string(t)))+s.Muted.Render(fmt.Sprintf(" %d", counts[t])))
	}
	lines := heading(5, "ENGINEERING LOG", "", width)
	lines = append(lines, strings.Join(tally, s.Subtle.Render(" · ")), "")

	textW := max(width-2, 10)
	for i, e := range c.Log {
		if i > 0 {
			lines = append(lines, "")
		}
		tag := entryStyle(e.Type).Render("[" + strings.ToUpper(string(e.Type)) + "]")
		lines = append(lines, s.Muted.Render(e.Date.Format("2006-01-02"))+"  "+tag+" "+s.Title.Render(e.Title))
		for _, l := range wrap(e.Content, textW) {
			lines = append(lines, "  "+s.Base.Render(l))
		}
		if len(e.Tags) > 0 {
			lines = append(lines, "  "+s.Subtle.Render(render.Truncate("#"+strings.Join(e.Tags, " #"), textW)))
		}
	}
	if len(c.Log) == 0 {
		lines = append(lines, s.Subtle.Render("no entries"))
	}
	return lines
}
