// Package scroll computes snap targets for a page split into pinned and
// flowing regions.
//
// Sections register a Region once they know where they sit in the page's
// scroll space. After a settle window (or once an expected number of regions
// has registered) the Sequencer normalizes the pinned regions against the
// total scroll distance and answers snap queries in progress units [0,1].
package scroll

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRegion is returned when a region descriptor cannot be used.
var ErrInvalidRegion = errors.New("invalid region")

// Region describes one page section in scroll space (lines).
type Region struct {
	ID     string
	Start  float64
	End    float64
	Pinned bool
}

// Center returns the midpoint of the region.
func (r Region) Center() float64 {
	return r.Start + (r.End-r.Start)*0.5
}

// Validate reports whether the region can be registered.
func (r Region) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRegion)
	}
	if !isFinite(r.Start) || !isFinite(r.End) {
		return fmt.Errorf("%w: %s has non-finite bounds", ErrInvalidRegion, r.ID)
	}
	if r.Start < 0 {
		return fmt.Errorf("%w: %s starts before 0 (%g)", ErrInvalidRegion, r.ID, r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: %s ends before it starts (%g < %g)", ErrInvalidRegion, r.ID, r.End, r.Start)
	}
	return nil
}

// Range is a pinned region normalized against the total scroll distance.
type Range struct {
	ID     string
	Start  float64
	End    float64
	Center float64
}

// Contains reports whether v falls inside the range widened by eps on both sides.
func (r Range) Contains(v, eps float64) bool {
	return v >= r.Start-eps && v <= r.End+eps
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
