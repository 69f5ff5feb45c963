// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionPalette       Action = "palette"
	ActionHelp          Action = "help"
	ActionToggleSidebar Action = "toggle_sidebar"
	ActionRefresh       Action = "refresh_markets"

	// Section jumps (alt+1..alt+6)
	ActionJumpDashboard Action = "jump_dashboard"
	ActionJumpMarkets   Action = "jump_markets"
	ActionJumpConsole   Action = "jump_console"
	ActionJumpNetworks  Action = "jump_networks"
	ActionJumpLog       Action = "jump_log"
	ActionJumpStatus    Action = "jump_status"

	// Page scrolling
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionHalfUp      Action = "half_up"
	ActionHalfDown    Action = "half_down"
	ActionTop         Action = "top"
	ActionBottom      Action = "bottom"
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"
)

// jumpTargets maps jump actions to page section IDs.
var jumpTargets = map[Action]string{
	ActionJumpDashboard: "dashboard",
	ActionJumpMarkets:   "markets",
	ActionJumpConsole:   "console",
	ActionJumpNetworks:  "networks",
	ActionJumpLog:       "log",
	ActionJumpStatus:    "status",
}

// JumpTarget returns the section ID for a jump action.
func JumpTarget(a Action) (string, bool) {
	id, ok := jumpTargets[a]
	return id, ok
}
