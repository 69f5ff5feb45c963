// Package about provides the About dialog shown from the command palette.
package about

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/dirkx/dirkx/internal/ui"
	"github.com/dirkx/dirkx/internal/ui/action"
	"github.com/dirkx/dirkx/internal/ui/popup"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close signals the about popup should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "about.close" }

// ActionMsg wraps an about action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "about", Action: a}
}

// Info is what the dialog reports.
type Info struct {
	NodeName string
	Version  string
	Live     bool
	Sections []string
	Entries  int // engineering log entries
	Networks int
}

// Model is the About popup.
type Model struct {
	ui.Base
	info Info
}

// New creates the popup.
func New(info Info) Model {
	return Model{info: info}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()
	s := t.S()

	source := "mock random walk"
	if m.info.Live {
		source = "CoinGecko + alternative.me"
	}
	version := m.info.Version
	if version == "" {
		version = "dev"
	}

	row := func(label, value string) string {
		return s.Muted.Render(render.Pad(label, 10)) + s.Base.Render(value)
	}

	lines := []string{
		styles.ApplyBoldGradient(m.info.NodeName+" // PERSONAL NODE", t.Primary, t.Secondary),
		"",
		row("VERSION", version),
		row("MARKETS", source),
		row("SECTIONS", strings.Join(m.info.Sections, " · ")),
		row("LOG", pluralize(m.info.Entries, "entry", "entries")),
		row("NETWORKS", pluralize(m.info.Networks, "resource", "resources")),
		"",
		s.Muted.Render("Markets, node telemetry, an engineering log and"),
		s.Muted.Render("curated open networks on one scrolling page."),
		"",
		s.Key.Render("ctrl+k") + s.Subtle.Render(" commands  ") + s.Key.Render("?") + s.Subtle.Render(" keys"),
		"",
		s.Subtle.Render("esc close"),
	}

	if w := m.Width(); w > 0 {
		for i, l := range lines {
			lines[i] = render.Truncate(l, w)
		}
	}
	return strings.Join(lines, "\n")
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return humanize.Comma(int64(n)) + " " + many
}
