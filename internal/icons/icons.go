package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Boot      string
	Dashboard string
	Markets   string
	Console   string
	Networks  string
	Log       string
	Status    string
	Up        string
	Down      string
	Online    string
	Palette   string
}

var (
	nerdIcons = Icons{
		Boot:      " ", // nf-fa-power_off
		Dashboard: "󰕮 ",      // nf-md-view_dashboard
		Markets:   " ", // nf-fa-line_chart
		Console:   " ", // nf-fa-terminal
		Networks:  "󰛳 ",      // nf-md-network
		Log:       " ", // nf-fa-book
		Status:    " ", // nf-fa-microchip
		Up:        "󰁝",       // nf-md-arrow_up
		Down:      "󰁅",       // nf-md-arrow_down
		Online:    "",  // nf-fa-circle
		Palette:   " ", // nf-fa-search
	}

	unicodeIcons = Icons{
		Boot:      "⏻ ",
		Dashboard: "▦ ",
		Markets:   "📈 ",
		Console:   "⌨ ",
		Networks:  "🌐 ",
		Log:       "📓 ",
		Status:    "⚙ ",
		Up:        "▲",
		Down:      "▼",
		Online:    "●",
		Palette:   "⌕ ",
	}

	noneIcons = Icons{
		Up:     "+",
		Down:   "-",
		Online: "*",
		// Palette prompt keeps a marker even without icons.
		Palette: "> ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Section returns the icon prefix for a page section ID, or "" if none.
func Section(id string) string {
	switch id {
	case "boot":
		return current.Boot
	case "dashboard":
		return current.Dashboard
	case "markets":
		return current.Markets
	case "console":
		return current.Console
	case "networks":
		return current.Networks
	case "log":
		return current.Log
	case "status":
		return current.Status
	}
	return ""
}

// FormatSection prefixes a section label with its icon.
func FormatSection(id, label string) string {
	return Section(id) + label
}

// Trend returns the up or down arrow for a signed change.
func Trend(change float64) string {
	if change >= 0 {
		return current.Up
	}
	return current.Down
}

// Online returns the status dot.
func Online() string {
	return current.Online
}

// Palette returns the palette prompt prefix.
func Palette() string {
	return current.Palette
}
