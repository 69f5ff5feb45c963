package sections

import (
	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

const sectorLimit = 5

// table column widths; name and trend absorb the rest.
const (
	colSymbol = 6
	colPrice  = 13
	colChange = 10
	colVolume = 10
	colCap    = 10
)

func renderMarkets(d Data, width int) []string {
	s := styles.T().S()
	snap := d.Market

	lines := heading(2, "MARKETS", "crypto and macro instruments, 24h window", width)

	lines = append(lines, subheading("Crypto"))
	lines = append(lines, assetTable(snap.Crypto, width)...)
	lines = append(lines, "", subheading("Macro"))
	lines = append(lines, assetTable(snap.Macro, width)...)

	lines = append(lines, "", subheading("Sectors"))
	sectors := market.Sectors()
	cols := perRow(width, len(sectors), 26)
	cw := columns(width, cols, 1)[0]
	cards := make([][]string, 0, len(sectors))
	for _, sec := range sectors {
		var rows []string
		for _, a := range market.InSector(snap.Crypto, sec, sectorLimit) {
			rows = append(rows, render.Row(s.Title.Render(a.Symbol),
				s.Change(a.Change24h).Render(market.FormatChange(a.Change24h)), cw-2))
		}
		if len(rows) == 0 {
			rows = []string{s.Subtle.Render("no assets tracked")}
		}
		cards = append(cards, panel(sec.Label(), rows, cw))
	}
	return append(lines, grid(cards, cols)...)
}

// assetTable renders one row per asset. The trend column is dropped on
// narrow screens, the name column absorbs the remaining width.
func assetTable(assets []market.Asset, width int) []string {
	s := styles.T().S()

	fixed := colSymbol + colPrice + colChange + colVolume + colCap
	trendW := 0
	if width >= fixed+40 {
		trendW = 16
	}
	nameW := max(width-fixed-trendW, 0)

	header := render.Pad("SYM", colSymbol) + render.TruncateAndPad("NAME", nameW) +
		alignRight("PRICE", colPrice) + alignRight("24H", colChange) +
		alignRight("VOLUME", colVolume) + alignRight("MCAP", colCap)
	if trendW > 0 {
		header += "  TREND"
	}
	lines := []string{s.Subtle.Render(header)}

	if len(assets) == 0 {
		return append(lines, s.Subtle.Render("no data"))
	}

	for _, a := range assets {
		change := s.Change(a.Change24h)
		mcap := "-"
		if a.MarketCap > 0 {
			mcap = market.FormatUSD(a.MarketCap)
		}
		row := s.Title.Render(render.TruncateAndPad(a.Symbol, colSymbol)) +
			s.Base.Render(render.TruncateAndPad(a.Name, nameW)) +
			s.Base.Render(alignRight(market.FormatPrice(a.Price), colPrice)) +
			change.Render(alignRight(icons.Trend(a.Change24h)+market.FormatChange(a.Change24h), colChange)) +
			s.Muted.Render(alignRight(market.FormatUSD(a.Volume), colVolume)) +
			s.Muted.Render(alignRight(mcap, colCap))
		if trendW > 0 {
			row += "  " + change.Render(render.Sparkline(a.Sparkline, trendW-2))
		}
		lines = append(lines, row)
	}
	return lines
}
