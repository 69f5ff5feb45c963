// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the sidebar is forced
// into its collapsed (icon rail) form.
const NarrowThreshold = 100

// HiddenThreshold is the terminal width below which the sidebar is hidden.
const HiddenThreshold = 60

// Sidebar widths, including the right border.
const (
	SidebarExpandedWidth  = 24
	SidebarCollapsedWidth = 6
)

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight      int
	TickerHeight      int // 0 if the ticker bar is hidden
	NotificationCount int
}

// ContentHeight calculates the available height for the page: the terminal
// height minus header, ticker and notifications. Never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.TickerHeight
	height -= NotificationHeight(opts.NotificationCount)
	return max(height, 0)
}

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// SidebarWidth returns the sidebar width for the terminal width and the
// user's collapsed preference. Narrow terminals collapse it regardless,
// very narrow ones hide it.
func SidebarWidth(windowWidth int, collapsed bool) int {
	switch {
	case windowWidth < HiddenThreshold:
		return 0
	case collapsed || IsNarrowMode(windowWidth):
		return SidebarCollapsedWidth
	default:
		return SidebarExpandedWidth
	}
}

// PageWidth returns the width left for the page next to the sidebar.
func PageWidth(windowWidth int, collapsed bool) int {
	return max(windowWidth-SidebarWidth(windowWidth, collapsed), 0)
}
