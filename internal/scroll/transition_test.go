package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseOutQuad(t *testing.T) {
	assert.InDelta(t, 0.0, EaseOutQuad(0), floatEps)
	assert.InDelta(t, 0.75, EaseOutQuad(0.5), floatEps)
	assert.InDelta(t, 1.0, EaseOutQuad(1), floatEps)
	assert.InDelta(t, 1.0, EaseOutQuad(2), floatEps, "clamped above")
	assert.InDelta(t, 0.0, EaseOutQuad(-1), floatEps, "clamped below")
}

func TestEaseInQuad(t *testing.T) {
	assert.InDelta(t, 0.25, EaseInQuad(0.5), floatEps)
	assert.InDelta(t, 1.0, EaseInQuad(1), floatEps)
}

func TestEaseInOutQuad(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOutQuad(0.5), floatEps)
	assert.InDelta(t, 0.125, EaseInOutQuad(0.25), floatEps)
	assert.InDelta(t, 0.875, EaseInOutQuad(0.75), floatEps)
}

func TestNewTransition_DurationBounded(t *testing.T) {
	now := time.Unix(0, 0)

	short := NewTransition(0.10, 0.101, now, DefaultSnapMin, DefaultSnapMax)
	long := NewTransition(0.10, 0.90, now, DefaultSnapMin, DefaultSnapMax)

	assert.GreaterOrEqual(t, short.Duration, DefaultSnapMin)
	assert.LessOrEqual(t, short.Duration, DefaultSnapMax)
	assert.Equal(t, DefaultSnapMax, long.Duration)
	assert.Less(t, short.Duration, long.Duration)
}

func TestTransition_AtIsMonotonicAndEnds(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTransition(0.2, 0.6, start, DefaultSnapMin, DefaultSnapMax)

	prev := tr.From
	for ms := 0; ms <= 400; ms += 16 {
		v, done := tr.At(start.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, v, prev, "not monotonic at %dms", ms)
		prev = v
		if done {
			assert.InDelta(t, 0.6, v, floatEps)
			return
		}
	}
	t.Fatal("transition never finished within its bounded duration")
}

func TestTransition_ZeroDuration(t *testing.T) {
	tr := Transition{From: 0.3, To: 0.5}
	v, done := tr.At(time.Now())
	assert.True(t, done)
	assert.InDelta(t, 0.5, v, floatEps)
}
