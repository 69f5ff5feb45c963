// Package paletteview renders the command palette overlay.
package paletteview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/palette"
	"github.com/dirkx/dirkx/internal/ui"
	"github.com/dirkx/dirkx/internal/ui/cursor"
	"github.com/dirkx/dirkx/internal/ui/popup"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

const (
	// MaxWidth is the widest the palette box grows.
	MaxWidth = 64
	// MaxVisible is the number of commands listed at once.
	MaxVisible = 8
	// TopPct places the palette this far down the screen.
	TopPct = 20
)

// View renders a palette.Controller. It keeps only presentation state:
// the query field and the list window.
type View struct {
	input textinput.Model
	cur   cursor.Cursor
}

// New creates a palette view.
func New() *View {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = ""
	ti.Focus()
	return &View{
		input: ti,
		cur:   cursor.New(ui.ScrollMargin),
	}
}

// Render returns the palette positioned for a termWidth x termHeight screen,
// ready to be composed over the page. A closed palette renders nothing.
func (v *View) Render(c *palette.Controller, termWidth, termHeight int) string {
	if !c.IsOpen() {
		v.cur.Reset()
		return ""
	}
	width := min(MaxWidth, termWidth-4)
	if width < 20 {
		return ""
	}
	inner := width - 4 // border + padding

	return popup.PlaceTop(v.box(c, inner), termWidth, termHeight, TopPct)
}

func (v *View) box(c *palette.Controller, inner int) string {
	t := styles.T()
	s := t.S()

	prompt := s.Key.Render(icons.Palette())
	v.input.Width = max(inner-lipgloss.Width(prompt)-1, 1)
	v.input.SetValue(c.Query())
	v.input.CursorEnd()

	lines := []string{
		render.Fit(prompt+v.input.View(), inner),
		s.Subtle.Render(render.Separator(inner)),
	}

	filtered := c.Filtered()
	if len(filtered) == 0 {
		lines = append(lines, render.Fit(s.Muted.Render("No commands found"), inner))
		if hint := c.Suggest(); hint != "" {
			lines = append(lines, render.Fit(s.Muted.Render("Did you mean ")+s.Key.Render(hint)+s.Muted.Render("?"), inner))
		}
	} else {
		height := min(MaxVisible, len(filtered))
		v.cur.Follow(c.SelectedIndex(), len(filtered), height)
		start, end := v.cur.VisibleRange(len(filtered), height)
		for i := start; i < end; i++ {
			lines = append(lines, renderCommand(filtered[i], i == c.SelectedIndex(), inner))
		}
	}

	lines = append(lines,
		s.Subtle.Render(render.Separator(inner)),
		render.Fit(s.Subtle.Render("↑↓ navigate  enter run  esc close"), inner),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderCommand renders: "▌ Go to Markets  Scroll to market data    alt+2"
func renderCommand(cmd palette.Command, selected bool, width int) string {
	s := styles.T().S()

	marker := "  "
	if selected {
		marker = "▌ "
	}
	shortcut := ""
	if cmd.Shortcut != "" {
		shortcut = " " + cmd.Shortcut
	}
	nameWidth := width - lipgloss.Width(shortcut)

	name := marker + cmd.Name
	desc := ""
	if cmd.Description != "" && lipgloss.Width(name)+2 < nameWidth {
		desc = "  " + cmd.Description
	}

	if selected {
		return s.Cursor.Render(render.Fit(name+desc, nameWidth) + shortcut)
	}
	return render.Fit(s.Title.Render(name)+s.Muted.Render(desc), nameWidth) + s.Key.Render(shortcut)
}
