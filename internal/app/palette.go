package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/keymap"
	"github.com/dirkx/dirkx/internal/palette"
	"github.com/dirkx/dirkx/internal/ui/sections"
)

// paletteCommands builds the command palette entries. Shortcuts are read
// from the resolver so the palette never disagrees with the key bindings.
func paletteCommands(keys *keymap.Resolver) []palette.Command {
	shortcut := func(a keymap.Action) string {
		if k := keys.KeysFor(a); len(k) > 0 {
			return k[0]
		}
		return ""
	}
	jump := func(id, name, desc string, a keymap.Action, keywords ...string) palette.Command {
		return palette.Command{
			ID:          id,
			Name:        name,
			Description: desc,
			Keywords:    keywords,
			Shortcut:    shortcut(a),
			Action:      func() tea.Cmd { return emit(JumpMsg{Section: id}) },
		}
	}

	return []palette.Command{
		jump(sections.Dashboard, "Dashboard", "Market overview and key coins", keymap.ActionJumpDashboard, "home", "overview"),
		jump(sections.Markets, "Markets", "Crypto and macro asset tables", keymap.ActionJumpMarkets, "prices", "crypto", "stocks"),
		jump(sections.Log, "Engineering Log", "Build notes, experiments and thoughts", keymap.ActionJumpLog, "journal", "blog"),
		jump(sections.Networks, "Open Networks", "Curated open resources", keymap.ActionJumpNetworks, "links", "resources"),
		jump(sections.Console, "System Console", "Tools installed on this node", keymap.ActionJumpConsole, "tools", "terminal"),
		jump(sections.Status, "Node Status", "Telemetry, gauges and services", keymap.ActionJumpStatus, "telemetry", "health"),
		{
			ID:          "about",
			Name:        "About",
			Description: "About this node",
			Keywords:    []string{"info", "version"},
			Action:      func() tea.Cmd { return emit(ShowAboutMsg{}) },
		},
		{
			ID:          "toggle-sidebar",
			Name:        "Toggle Sidebar",
			Description: "Collapse or expand the section rail",
			Keywords:    []string{"navigation", "menu"},
			Shortcut:    shortcut(keymap.ActionToggleSidebar),
			Action:      func() tea.Cmd { return emit(ToggleSidebarMsg{}) },
		},
		{
			ID:          "refresh-markets",
			Name:        "Refresh Markets",
			Description: "Fetch market data now",
			Keywords:    []string{"reload", "update"},
			Shortcut:    shortcut(keymap.ActionRefresh),
			Action:      func() tea.Cmd { return emit(MarketRefreshMsg{}) },
		},
		{
			ID:          "help",
			Name:        "Key Bindings",
			Description: "Show every key binding",
			Keywords:    []string{"keys", "shortcuts"},
			Shortcut:    shortcut(keymap.ActionHelp),
			Action:      func() tea.Cmd { return emit(ShowHelpMsg{}) },
		},
	}
}
