package scroll

import (
	"math"
	"time"
)

const (
	// DefaultSnapMin and DefaultSnapMax bound the duration of a snap transition.
	DefaultSnapMin = 150 * time.Millisecond
	DefaultSnapMax = 350 * time.Millisecond

	// fullDurationDistance is the progress distance that earns the maximum
	// transition duration; shorter hops scale down toward the minimum.
	fullDurationDistance = 0.1
)

// EaseOutQuad decelerates toward the end (GSAP power2.out).
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInQuad accelerates from the start (GSAP power2.in).
func EaseInQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// EaseInOutQuad accelerates then decelerates (GSAP power2.inOut).
func EaseInOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Transition is an eased, time-bounded move between two progress values.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// NewTransition plans a move from one progress value to another. The duration
// grows with the distance and stays within [minD, maxD].
func NewTransition(from, to float64, now time.Time, minD, maxD time.Duration) Transition {
	if maxD < minD {
		maxD = minD
	}
	ratio := math.Min(math.Abs(to-from)/fullDurationDistance, 1)
	d := minD + time.Duration(float64(maxD-minD)*ratio)
	return Transition{From: from, To: to, Start: now, Duration: d}
}

// At samples the transition. done is true once the target has been reached.
func (t Transition) At(now time.Time) (value float64, done bool) {
	if t.Duration <= 0 {
		return t.To, true
	}
	elapsed := now.Sub(t.Start)
	if elapsed >= t.Duration {
		return t.To, true
	}
	if elapsed < 0 {
		return t.From, false
	}
	p := EaseOutQuad(float64(elapsed) / float64(t.Duration))
	return t.From + (t.To-t.From)*p, false
}
