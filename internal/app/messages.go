package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/market"
)

// UptimeTickMsg advances the uptime counter.
type UptimeTickMsg struct {
	Time time.Time
}

// TelemetryTickMsg triggers one telemetry update.
type TelemetryTickMsg struct{}

// MarketWalkMsg triggers one random-walk step of the market snapshot.
type MarketWalkMsg struct {
	Time time.Time
}

// MarketRefreshMsg triggers a live fetch. Scheduled refreshes carry the
// generation they were scheduled under; zero means a manual refresh.
type MarketRefreshMsg struct {
	Generation int
}

// MarketFetchedMsg carries the result of a live fetch. Snapshot is usable
// even when Err is set.
type MarketFetchedMsg struct {
	Snapshot market.Snapshot
	Err      error
}

// TickerTickMsg rotates the ticker bar.
type TickerTickMsg struct{}

// StderrMsg is sent when stray stderr output is captured.
type StderrMsg struct {
	Line string
}

// NotifyMsg shows a transient notification.
type NotifyMsg struct {
	Message string
}

// JumpMsg scrolls the page to a section.
type JumpMsg struct {
	Section string
}

// ToggleSidebarMsg collapses or expands the sidebar.
type ToggleSidebarMsg struct{}

// ShowAboutMsg opens the About dialog.
type ShowAboutMsg struct{}

// ShowHelpMsg opens the key bindings popup.
type ShowHelpMsg struct{}

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// MaxNotifications caps the stack; the oldest is dropped first.
const MaxNotifications = 4

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}
