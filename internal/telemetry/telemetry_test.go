package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// scripted replays fixed values; IntN scales the next float into [0, n).
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *scripted) IntN(n int) int {
	return int(s.Float64() * float64(n))
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, time.Duration(0), s.Uptime)
	assert.Equal(t, int64(1247893), s.PacketsSent)
	assert.InDelta(t, 99.97, s.NetworkIntegrity, 1e-9)
	assert.Equal(t, int64(4521), s.TrackersBlocked)
	assert.InDelta(t, 42.0, s.SystemTemp, 1e-9)
}

func TestAdvanceUptime(t *testing.T) {
	s := Default()
	s = AdvanceUptime(s, time.Second)
	s = AdvanceUptime(s, time.Second)
	s = AdvanceUptime(s, -time.Second)
	assert.Equal(t, 2*time.Second, s.Uptime)
}

func TestTick(t *testing.T) {
	tests := []struct {
		name      string
		start     State
		rng       []float64
		packets   int64
		integrity float64
		trackers  int64
		temp      float64
	}{
		{
			name:      "midpoint draws",
			start:     Default(),
			rng:       []float64{0.5, 0.5, 0.5, 0.5},
			packets:   1247893 + 25,
			integrity: 99.97,
			trackers:  4521 + 1,
			temp:      42,
		},
		{
			name:      "high draws clamp integrity",
			start:     Default(),
			rng:       []float64{0.99, 0.99, 0.99, 0.99},
			packets:   1247893 + 49,
			integrity: 100,
			trackers:  4521 + 2,
			temp:      42.98,
		},
		{
			name:      "low draws clamp temperature",
			start:     State{PacketsSent: 10, NetworkIntegrity: 99.01, TrackersBlocked: 1, SystemTemp: 35.5},
			rng:       []float64{0, 0, 0, 0},
			packets:   10,
			integrity: 99,
			trackers:  1,
			temp:      35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tick(tt.start, &scripted{vals: tt.rng})
			assert.Equal(t, tt.packets, got.PacketsSent)
			assert.InDelta(t, tt.integrity, got.NetworkIntegrity, 1e-9)
			assert.Equal(t, tt.trackers, got.TrackersBlocked)
			assert.InDelta(t, tt.temp, got.SystemTemp, 1e-9)
			assert.Equal(t, tt.start.Uptime, got.Uptime)
		})
	}
}

func TestTick_StaysInBounds(t *testing.T) {
	rng := NewRandom(7)
	s := Default()
	for range 10_000 {
		s = Tick(s, rng)
		assert.GreaterOrEqual(t, s.NetworkIntegrity, MinIntegrity)
		assert.LessOrEqual(t, s.NetworkIntegrity, MaxIntegrity)
		assert.GreaterOrEqual(t, s.SystemTemp, MinTemp)
		assert.LessOrEqual(t, s.SystemTemp, MaxTemp)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Second, "00:01:01"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "03:04:05"},
		{100 * time.Hour, "100:00:00"},
		{1500 * time.Millisecond, "00:00:01"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.in); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	s := Default()
	s.SystemTemp = 61.4
	m := s.Metrics()

	assert.Len(t, m, 5)
	assert.Equal(t, "1,247,893", m[1].Value)
	assert.Equal(t, "99.97%", m[2].Value)
	assert.Equal(t, "4,521", m[3].Value)
	assert.Equal(t, "61°C", m[4].Value)
	assert.Equal(t, TrendCritical, m[4].Trend)
}

func TestTempTrend(t *testing.T) {
	assert.Equal(t, TrendStable, State{SystemTemp: 42}.TempTrend())
	assert.Equal(t, TrendRising, State{SystemTemp: 56}.TempTrend())
	assert.Equal(t, TrendCritical, State{SystemTemp: 65}.TempTrend())
}
