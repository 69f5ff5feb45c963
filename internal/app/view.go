package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/keymap"
	"github.com/dirkx/dirkx/internal/palette"
	"github.com/dirkx/dirkx/internal/ui/headerbar"
	"github.com/dirkx/dirkx/internal/ui/layout"
	"github.com/dirkx/dirkx/internal/ui/popup"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/sidebar"
	"github.com/dirkx/dirkx/internal/ui/styles"
	"github.com/dirkx/dirkx/internal/ui/tickerbar"
)

// bootCardWidth is the widest the boot card gets.
const bootCardWidth = 60

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.Booting {
		return enforceHeight(m.renderBoot(), m.Height)
	}

	header := headerbar.Render(headerbar.Info{
		NodeName:   m.cfg.NodeName,
		Now:        m.clock(),
		Uptime:     m.Telemetry.Uptime,
		PaletteKey: palette.KeyToggle,
		Live:       m.Live(),
	}, m.Width)

	parts := []string{header, m.renderBody()}
	if tickerbar.Height(m.Ticker) > 0 {
		parts = append(parts, tickerbar.Render(m.Ticker, m.Width))
	}
	if len(m.Notifications) > 0 {
		parts = append(parts, m.renderNotifications())
	}
	view := enforceHeight(strings.Join(parts, "\n"), m.Height)

	if m.Palette.IsOpen() {
		view = popup.Compose(view, m.paletteView.Render(m.Palette, m.Width, m.Height), m.Width, m.Height)
	}
	view = m.Popups.RenderOverlay(view)

	return enforceHeight(view, m.Height)
}

// renderBody draws the sidebar rail next to the page.
func (m Model) renderBody() string {
	pageView := m.Page.View()
	sw := layout.SidebarWidth(m.Width, m.SidebarCollapsed)
	if sw == 0 {
		return pageView
	}
	h := lipgloss.Height(pageView)
	collapsed := m.SidebarCollapsed || layout.IsNarrowMode(m.Width)
	rail := sidebar.Render(m.sidebarEntries(), m.Page.Active(), sw, h, collapsed)
	return lipgloss.JoinHorizontal(lipgloss.Top, rail, pageView)
}

// sidebarEntries lists the navigable sections with their jump keys. The
// boot section has no entry.
func (m Model) sidebarEntries() []sidebar.Entry {
	keys := make(map[string]string)
	for _, b := range keymap.All {
		if id, ok := keymap.JumpTarget(b.Action); ok && len(b.Keys) > 0 {
			keys[id] = b.Keys[0]
		}
	}
	secs := m.Page.Sections()
	entries := make([]sidebar.Entry, 0, len(secs))
	for _, s := range secs {
		key, ok := keys[s.ID]
		if !ok {
			continue
		}
		entries = append(entries, sidebar.Entry{ID: s.ID, Label: s.Label, Key: key})
	}
	return entries
}

// renderBoot draws the boot card while the boot sequence plays.
func (m Model) renderBoot() string {
	t := styles.T()
	s := t.S()
	f := m.Boot.Frame()
	w := max(min(bootCardWidth, m.Width-4), 10)

	lines := []string{
		styles.ApplyBoldGradient(m.cfg.NodeName+" // BOOT SEQUENCE", t.Primary, t.Secondary),
		"",
	}
	for i, l := range m.Content.Boot {
		if i < f.VisibleLines {
			lines = append(lines, s.Muted.Render("> ")+s.Base.Render(render.Truncate(l, w-2)))
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines,
		"",
		s.Active.Render(render.Meter(float64(f.Progress)/100, w-5))+s.Muted.Render(fmt.Sprintf(" %3d%%", f.Progress)),
		"",
		s.Subtle.Render("press any key to skip"),
	)

	card := lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, card)
}

// renderNotifications renders all notification messages.
func (m Model) renderNotifications() string {
	t := styles.T()
	innerWidth := m.Width - 2

	checkStyle := lipgloss.NewStyle().Foreground(t.Primary)
	msgStyle := lipgloss.NewStyle().Foreground(t.FgBase)

	lines := make([]string, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		line := checkStyle.Render("✓") + " " + msgStyle.Render(render.Sanitize(n.Message))
		lines = append(lines, render.TruncateAndPad(line, innerWidth))
	}
	return styles.PanelStyle(false).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) < targetHeight:
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	case len(lines) > targetHeight:
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
