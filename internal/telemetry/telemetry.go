// Package telemetry simulates node health counters.
//
// State is a plain value; AdvanceUptime and Tick return updated copies so
// the host can drive them from timers and tests can drive them directly.
package telemetry

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
)

// Bounds for the simulated gauges.
const (
	MinIntegrity = 99.0
	MaxIntegrity = 100.0
	MinTemp      = 35.0
	MaxTemp      = 70.0

	// HotTemp marks the temperature reading as critical.
	HotTemp = 60.0
	// WarmTemp marks the temperature as trending up.
	WarmTemp = 55.0
)

// State is a snapshot of the node counters.
type State struct {
	Uptime           time.Duration
	PacketsSent      int64
	NetworkIntegrity float64
	TrackersBlocked  int64
	SystemTemp       float64
}

// Default returns the counters a freshly booted node starts with.
func Default() State {
	return State{
		PacketsSent:      1247893,
		NetworkIntegrity: 99.97,
		TrackersBlocked:  4521,
		SystemTemp:       42,
	}
}

// Random is the randomness source used by Tick.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandom returns a seeded source. A zero seed picks a time-based seed.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AdvanceUptime adds elapsed time to the uptime counter.
func AdvanceUptime(s State, elapsed time.Duration) State {
	if elapsed > 0 {
		s.Uptime += elapsed
	}
	return s
}

// Tick applies one telemetry update.
func Tick(s State, rng Random) State {
	s.PacketsSent += int64(rng.IntN(50))
	s.NetworkIntegrity = clamp(s.NetworkIntegrity+(rng.Float64()-0.5)*0.1, MinIntegrity, MaxIntegrity)
	s.TrackersBlocked += int64(rng.IntN(3))
	s.SystemTemp = clamp(s.SystemTemp+(rng.Float64()-0.5)*2, MinTemp, MaxTemp)
	return s
}

// FormatUptime renders d as HH:MM:SS. Hours are not wrapped at 24.
func FormatUptime(d time.Duration) string {
	secs := int64(max(d, 0) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Trend describes how a reading is moving.
type Trend int

const (
	TrendStable Trend = iota
	TrendRising
	TrendCritical
)

// TempTrend classifies the current temperature.
func (s State) TempTrend() Trend {
	switch {
	case s.SystemTemp > HotTemp:
		return TrendCritical
	case s.SystemTemp > WarmTemp:
		return TrendRising
	default:
		return TrendStable
	}
}

// Metric is a labelled, display-ready reading.
type Metric struct {
	Label string
	Value string
	Trend Trend
}

// Metrics renders the counters for display.
func (s State) Metrics() []Metric {
	return []Metric{
		{Label: "Uptime", Value: FormatUptime(s.Uptime)},
		{Label: "Packets Sent", Value: humanize.Comma(s.PacketsSent), Trend: TrendRising},
		{Label: "Network Integrity", Value: fmt.Sprintf("%.2f%%", s.NetworkIntegrity)},
		{Label: "Trackers Blocked", Value: humanize.Comma(s.TrackersBlocked), Trend: TrendRising},
		{Label: "System Temp", Value: fmt.Sprintf("%d°C", int(math.Round(s.SystemTemp))), Trend: s.TempTrend()},
	}
}

// Service is one entry in the service health table.
type Service struct {
	Name    string
	Latency time.Duration
	Online  bool
}

// Services returns the static service health table.
func Services() []Service {
	return []Service{
		{Name: "Market Data Feed", Latency: 45 * time.Millisecond, Online: true},
		{Name: "Network Monitor", Latency: 12 * time.Millisecond, Online: true},
		{Name: "Telemetry Collector", Latency: 8 * time.Millisecond, Online: true},
		{Name: "Command Interface", Latency: 3 * time.Millisecond, Online: true},
		{Name: "Data Cache", Latency: 2 * time.Millisecond, Online: true},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
