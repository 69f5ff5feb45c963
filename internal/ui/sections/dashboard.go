package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

// keyCoins are featured on the dashboard.
var keyCoins = []string{"BTC", "ETH", "SOL"}

func renderDashboard(d Data, width, height int, progress float64) []string {
	s := styles.T().S()
	snap := d.Market

	updated := "SOURCE " + strings.ToUpper(string(snap.Source))
	if !snap.UpdatedAt.IsZero() {
		updated += " · " + snap.UpdatedAt.UTC().Format("15:04:05")
	}
	lines := heading(1, "MARKET DASHBOARD", updated, width)

	lines = append(lines, grid(overviewCards(snap, width), perRow(width, 4, 24))...)
	lines = append(lines, grid(coinCards(snap, width), perRow(width, 3, 24))...)

	moverCols := perRow(width, 2, 30)
	mw := columns(width, moverCols, 1)[0]
	lines = append(lines, grid([][]string{
		panel("Top Gainers", moverRows(snap.TopGainers, mw-2), mw),
		panel("Top Losers", moverRows(snap.TopLosers, mw-2), mw),
	}, moverCols)...)

	// Pin progress indicator on the last line.
	footer := s.Subtle.Render("PINNED ") +
		s.Muted.Render(render.Meter(progress, min(20, max(width-12, 1)))) +
		s.Subtle.Render(fmt.Sprintf(" %3d%%", int(progress*100)))
	lines = render.FitLines(lines, width, max(height-1, 0))
	if height > 0 {
		lines = append(lines, footer)
	}
	return lines
}

func overviewCards(snap market.Snapshot, width int) [][]string {
	s := styles.T().S()
	cw := columns(width, perRow(width, 4, 24), 1)[0]
	ov := snap.Overview
	fg := snap.FearGreed

	return [][]string{
		panel("Market Cap", []string{
			s.Title.Render(market.FormatUSD(ov.TotalMarketCap)),
			s.Change(ov.MarketCapChange24h).Render(icons.Trend(ov.MarketCapChange24h) + market.FormatChange(ov.MarketCapChange24h)),
		}, cw),
		panel("24h Volume", []string{
			s.Title.Render(market.FormatUSD(ov.TotalVolume)),
			s.Muted.Render("spot, all pairs"),
		}, cw),
		panel("BTC Dominance", []string{
			s.Title.Render(fmt.Sprintf("%.1f%%", ov.BTCDominance)),
			s.Muted.Render(render.Meter(ov.BTCDominance/100, cw-4)),
		}, cw),
		panel("Fear & Greed", []string{
			s.Title.Render(fmt.Sprintf("%d", fg.Value)) + " " + fearGreedStyle(fg.Value).Render(fg.Classification),
			fearGreedStyle(fg.Value).Render(render.Meter(float64(fg.Value)/100, cw-4)),
		}, cw),
	}
}

func fearGreedStyle(v int) lipgloss.Style {
	s := styles.T().S()
	switch {
	case v <= 44:
		return s.Down
	case v <= 55:
		return s.Warning
	default:
		return s.Up
	}
}

func coinCards(snap market.Snapshot, width int) [][]string {
	s := styles.T().S()
	cw := columns(width, perRow(width, 3, 24), 1)[0]

	cards := make([][]string, 0, len(keyCoins))
	for _, sym := range keyCoins {
		a, ok := snap.Coin(sym)
		if !ok {
			continue
		}
		change := s.Change(a.Change24h)
		spark := change.Render(render.Sparkline(a.Sparkline, cw-2))
		if len(a.Sparkline) == 0 {
			spark = s.Subtle.Render("collecting…")
		}
		cards = append(cards, panel(a.Name, []string{
			render.Row(s.Title.Render("$"+market.FormatPrice(a.Price)),
				change.Render(icons.Trend(a.Change24h)+market.FormatChange(a.Change24h)), cw-2),
			spark,
		}, cw))
	}
	return cards
}

func moverRows(assets []market.Asset, width int) []string {
	s := styles.T().S()
	if len(assets) == 0 {
		return []string{s.Subtle.Render("no data")}
	}
	rows := make([]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, render.Row(
			s.Title.Render(render.Pad(a.Symbol, 6))+s.Muted.Render("$"+market.FormatPrice(a.Price)),
			s.Change(a.Change24h).Render(market.FormatChange(a.Change24h)),
			width,
		))
	}
	return rows
}
