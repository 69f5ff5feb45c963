// Package market models crypto and macro market data for the dashboard.
//
// A Snapshot is a plain value. Step applies one random-walk update to a
// snapshot; Client fetches a live snapshot from public APIs and falls back
// to mock data per endpoint.
package market

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Source records where a snapshot came from.
type Source string

const (
	SourceMock Source = "mock"
	SourceLive Source = "live"
)

// Asset is one tradable instrument.
type Asset struct {
	ID        string
	Symbol    string
	Name      string
	Price     float64
	Change24h float64
	Volume    float64
	MarketCap float64
	Sparkline []float64
}

// Overview holds global market figures.
type Overview struct {
	TotalMarketCap     float64
	TotalVolume        float64
	MarketCapChange24h float64
	BTCDominance       float64
	ETHDominance       float64
}

// FearGreed is the crypto fear & greed index reading.
type FearGreed struct {
	Value          int
	Classification string
	Timestamp      time.Time
}

// Snapshot is the full market state shown by the dashboard.
type Snapshot struct {
	Crypto     []Asset
	Macro      []Asset
	Overview   Overview
	FearGreed  FearGreed
	TopGainers []Asset
	TopLosers  []Asset
	Source     Source
	UpdatedAt  time.Time
}

// MoverCount is how many gainers and losers a snapshot tracks.
const MoverCount = 3

// All returns crypto followed by macro assets.
func (s Snapshot) All() []Asset {
	out := make([]Asset, 0, len(s.Crypto)+len(s.Macro))
	out = append(out, s.Crypto...)
	return append(out, s.Macro...)
}

// Coin finds a crypto asset by symbol, case-insensitively.
func (s Snapshot) Coin(symbol string) (Asset, bool) {
	for _, a := range s.Crypto {
		if strings.EqualFold(a.Symbol, symbol) {
			return a, true
		}
	}
	return Asset{}, false
}

// WithMovers recomputes the gainers and losers over every asset.
func (s Snapshot) WithMovers() Snapshot {
	s.TopGainers, s.TopLosers = Movers(s.All(), MoverCount)
	return s
}

// Movers ranks assets by 24h change and returns the n best and the n worst,
// the worst first. Ties keep input order.
func Movers(assets []Asset, n int) (gainers, losers []Asset) {
	if n <= 0 || len(assets) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(assets)
	slices.SortStableFunc(sorted, func(a, b Asset) int {
		return cmp.Compare(b.Change24h, a.Change24h)
	})
	n = min(n, len(sorted))
	gainers = slices.Clone(sorted[:n])
	losers = slices.Clone(sorted[len(sorted)-n:])
	slices.Reverse(losers)
	return gainers, losers
}

// Gainers returns up to limit assets with a positive 24h change, best first.
func Gainers(assets []Asset, limit int) []Asset {
	return ranked(assets, limit, func(a Asset) bool { return a.Change24h > 0 },
		func(a, b Asset) int { return cmp.Compare(b.Change24h, a.Change24h) })
}

// Losers returns up to limit assets with a negative 24h change, worst first.
func Losers(assets []Asset, limit int) []Asset {
	return ranked(assets, limit, func(a Asset) bool { return a.Change24h < 0 },
		func(a, b Asset) int { return cmp.Compare(a.Change24h, b.Change24h) })
}

func ranked(assets []Asset, limit int, keep func(Asset) bool, order func(a, b Asset) int) []Asset {
	out := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if keep(a) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, order)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sector groups coins by narrative.
type Sector string

const (
	SectorAI     Sector = "ai"
	SectorLayer1 Sector = "layer1"
	SectorLayer2 Sector = "layer2"
)

var sectorMembers = map[Sector][]string{
	SectorAI:     {"near", "rndr", "tao", "grt", "fet", "agix", "ocean", "phb"},
	SectorLayer1: {"btc", "eth", "sol", "avax", "dot", "ada", "bnb"},
	SectorLayer2: {"matic", "arb", "op", "imx", "manta"},
}

// Label returns the display name of the sector.
func (s Sector) Label() string {
	switch s {
	case SectorAI:
		return "AI"
	case SectorLayer1:
		return "Layer 1"
	case SectorLayer2:
		return "Layer 2"
	default:
		return string(s)
	}
}

// Sectors lists every known sector in display order.
func Sectors() []Sector {
	return []Sector{SectorAI, SectorLayer1, SectorLayer2}
}

// InSector returns up to limit assets belonging to sector, in input order.
func InSector(assets []Asset, sector Sector, limit int) []Asset {
	members := sectorMembers[sector]
	out := make([]Asset, 0, len(members))
	for _, a := range assets {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if slices.Contains(members, strings.ToLower(a.Symbol)) {
			out = append(out, a)
		}
	}
	return out
}

// Classify maps a fear & greed value to its label.
func Classify(v int) string {
	switch {
	case v <= 24:
		return "Extreme Fear"
	case v <= 44:
		return "Fear"
	case v <= 55:
		return "Neutral"
	case v <= 75:
		return "Greed"
	default:
		return "Extreme Greed"
	}
}
