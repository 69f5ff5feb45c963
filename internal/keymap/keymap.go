package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "page", "palette"
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionPalette, []string{"ctrl+k"}, "Command palette", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleSidebar, []string{"b"}, "Toggle sidebar", "global"},
	{ActionRefresh, []string{"r"}, "Refresh market data", "global"},
	{ActionJumpDashboard, []string{"alt+1"}, "Dashboard", "global"},
	{ActionJumpMarkets, []string{"alt+2"}, "Markets", "global"},
	{ActionJumpConsole, []string{"alt+3"}, "System console", "global"},
	{ActionJumpNetworks, []string{"alt+4"}, "Open networks", "global"},
	{ActionJumpLog, []string{"alt+5"}, "Engineering log", "global"},
	{ActionJumpStatus, []string{"alt+6"}, "Node status", "global"},

	// Page
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "page"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "page"},
	{ActionPageDown, []string{"pgdown", " "}, "Page down", "page"},
	{ActionPageUp, []string{"pgup"}, "Page up", "page"},
	{ActionHalfDown, []string{"ctrl+d"}, "Half page down", "page"},
	{ActionHalfUp, []string{"ctrl+u"}, "Half page up", "page"},
	{ActionTop, []string{"g", "home"}, "Top", "page"},
	{ActionBottom, []string{"G", "end"}, "Bottom", "page"},
	{ActionNextSection, []string{"tab", "n"}, "Next section", "page"},
	{ActionPrevSection, []string{"shift+tab", "N"}, "Previous section", "page"},
}

// Palette keys are handled by the palette itself and listed for help only.
var paletteHelp = []Binding{
	{"", []string{"up", "ctrl+p"}, "Previous command", "palette"},
	{"", []string{"down", "ctrl+n"}, "Next command", "palette"},
	{"", []string{"enter"}, "Run command", "palette"},
	{"", []string{"ctrl+u"}, "Clear query", "palette"},
	{"", []string{"esc", "ctrl+k"}, "Close", "palette"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	if context == "palette" {
		return paletteHelp
	}
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
