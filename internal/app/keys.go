package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/keymap"
)

// keyHandler attempts to handle a key. It reports false to pass the key on.
type keyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

// keyChain is the order keys are offered in: the first handler that
// claims a key stops the chain.
var keyChain = []keyHandler{
	handleInterrupt,
	handleBootKey,
	handlePopupKey,
	handlePaletteKey,
	handleGlobalKey,
	handlePageKey,
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, h := range keyChain {
		if next, cmd, ok := h(m, msg); ok {
			return next, cmd
		}
	}
	return m, nil
}

// handleInterrupt quits on ctrl+c whatever has focus.
func handleInterrupt(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if msg.Type != tea.KeyCtrlC {
		return m, nil, false
	}
	return m, tea.Quit, true
}

// handleBootKey skips the boot sequence on any key.
func handleBootKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if !m.Booting {
		return m, nil, false
	}
	var cmd tea.Cmd
	m.Boot, cmd = m.Boot.Update(msg)
	return m, cmd, true
}

func handlePopupKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	handled, cmd := m.Popups.HandleKey(msg)
	return m, cmd, handled
}

// handlePaletteKey lets the palette claim its toggle key while closed and
// every key while open.
func handlePaletteKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	consumed, cmd := m.Palette.HandleKey(msg)
	return m, cmd, consumed
}

func handleGlobalKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	a := m.keys.Resolve(msg.String())
	if id, ok := keymap.JumpTarget(a); ok {
		var cmd tea.Cmd
		m.Page, cmd = m.Page.JumpTo(id)
		return m, cmd, true
	}

	switch a { //nolint:exhaustive // page actions fall through to the page
	case keymap.ActionQuit:
		return m, tea.Quit, true
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp([]string{"global", "page", "palette"}), true
	case keymap.ActionToggleSidebar:
		next, cmd := m.toggleSidebar()
		return next, cmd, true
	case keymap.ActionRefresh:
		next, cmd := m.handleMarketRefresh()
		return next, cmd, true
	}
	return m, nil, false
}

func handlePageKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	a := m.keys.Resolve(msg.String())
	if a == "" {
		return m, nil, false
	}
	next, cmd, ok := m.Page.HandleAction(a)
	if !ok {
		return m, nil, false
	}
	m.Page = next
	return m, cmd, true
}
