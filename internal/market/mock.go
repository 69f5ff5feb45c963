package market

import (
	"math"
	"time"
)

// MockSnapshot returns the seed data used when live data is disabled or
// unavailable.
func MockSnapshot(now time.Time) Snapshot {
	s := Snapshot{
		Crypto:    mockCrypto(),
		Macro:     mockMacro(),
		Overview:  mockOverview(),
		FearGreed: mockFearGreed(now),
		Source:    SourceMock,
		UpdatedAt: now,
	}
	return s.WithMovers()
}

func mockCrypto() []Asset {
	return []Asset{
		{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Price: 67420.50, Change24h: 2.4, Volume: 34.2e9, MarketCap: 1.32e12},
		{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Price: 3540.25, Change24h: 1.8, Volume: 18.5e9, MarketCap: 425e9},
		{ID: "solana", Symbol: "SOL", Name: "Solana", Price: 148.75, Change24h: 4.1, Volume: 4.2e9, MarketCap: 68e9},
		{ID: "avalanche-2", Symbol: "AVAX", Name: "Avalanche", Price: 28.40, Change24h: -1.2, Volume: 890e6, MarketCap: 11e9},
		{ID: "arbitrum", Symbol: "ARB", Name: "Arbitrum", Price: 0.85, Change24h: 3.5, Volume: 245e6, MarketCap: 2.8e9},
		{ID: "optimism", Symbol: "OP", Name: "Optimism", Price: 1.45, Change24h: -0.8, Volume: 156e6, MarketCap: 1.5e9},
	}
}

func mockMacro() []Asset {
	return []Asset{
		{ID: "spx", Symbol: "SPX", Name: "S&P 500", Price: 5980.25, Change24h: 0.6, Volume: 2.1e9},
		{ID: "ndx", Symbol: "NDX", Name: "Nasdaq 100", Price: 21400.80, Change24h: 0.8, Volume: 4.5e9},
		{ID: "gld", Symbol: "GLD", Name: "Gold", Price: 2485.50, Change24h: -0.2, Volume: 12e6},
		{ID: "dxy", Symbol: "DXY", Name: "US Dollar Index", Price: 103.25, Change24h: 0.1, Volume: 45e3},
		{ID: "tnx", Symbol: "TNX", Name: "10Y Treasury", Price: 4.25, Change24h: -0.05, Volume: 890e3},
		{ID: "vix", Symbol: "VIX", Name: "Volatility Index", Price: 14.8, Change24h: -2.1, Volume: 2.3e6},
	}
}

func mockOverview() Overview {
	return Overview{
		TotalMarketCap:     2.48e12,
		TotalVolume:        89e9,
		MarketCapChange24h: 1.45,
		BTCDominance:       52.4,
		ETHDominance:       16.8,
	}
}

func mockFearGreed(now time.Time) FearGreed {
	return FearGreed{Value: 65, Classification: Classify(65), Timestamp: now}
}

// Random is the randomness source used by Step.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Volatility returns the per-step relative price volatility for a symbol.
func Volatility(symbol string) float64 {
	switch symbol {
	case "BTC":
		return 0.002
	case "ETH":
		return 0.003
	default:
		return 0.005
	}
}

// Step applies one random-walk update to prices, 24h changes and BTC
// dominance, then recomputes the movers.
func Step(s Snapshot, rng Random, now time.Time) Snapshot {
	s.Crypto = walk(s.Crypto, rng)
	s.Macro = walk(s.Macro, rng)
	s.Overview.BTCDominance += (rng.Float64() - 0.5) * 0.05
	s.UpdatedAt = now
	return s.WithMovers()
}

func walk(assets []Asset, rng Random) []Asset {
	out := make([]Asset, len(assets))
	for i, a := range assets {
		change := (rng.Float64() - 0.5) * Volatility(a.Symbol)
		a.Price *= 1 + change
		a.Change24h = round2(a.Change24h + (rng.Float64()-0.5)*0.1)
		a.Sparkline = appendHistory(a.Sparkline, a.Price)
		out[i] = a
	}
	return out
}

// HistoryLen caps the price history kept for sparklines.
const HistoryLen = 48

// appendHistory returns a new slice so snapshots never share a backing array.
func appendHistory(h []float64, price float64) []float64 {
	if len(h) >= HistoryLen {
		h = h[len(h)-HistoryLen+1:]
	}
	out := make([]float64, len(h), len(h)+1)
	copy(out, h)
	return append(out, price)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
