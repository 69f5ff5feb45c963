package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/stderr"
)

// TickerInterval is how often the ticker bar rotates.
const TickerInterval = 4 * time.Second

// UptimeTickCmd sends UptimeTickMsg after d.
func UptimeTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return UptimeTickMsg{Time: t}
	})
}

// TelemetryTickCmd sends TelemetryTickMsg after d.
func TelemetryTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TelemetryTickMsg{}
	})
}

// MarketWalkCmd sends MarketWalkMsg after d.
func MarketWalkCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return MarketWalkMsg{Time: t}
	})
}

// MarketRefreshCmd sends a scheduled MarketRefreshMsg after d.
func MarketRefreshCmd(d time.Duration, generation int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MarketRefreshMsg{Generation: generation}
	})
}

// TickerTickCmd sends TickerTickMsg after TickerInterval.
func TickerTickCmd() tea.Cmd {
	return tea.Tick(TickerInterval, func(time.Time) tea.Msg {
		return TickerTickMsg{}
	})
}

// FetchMarketCmd runs one live fetch bounded by timeout.
func FetchMarketCmd(f MarketFetcher, timeout time.Duration, now time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := f.Fetch(ctx, now)
		return MarketFetchedMsg{Snapshot: snap, Err: err}
	}
}

// WatchStderr returns a command that waits for captured stderr output.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
