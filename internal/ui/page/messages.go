package page

import (
	"time"

	"github.com/dirkx/dirkx/internal/scroll"
)

// RegionMsg carries one section's region to the sequencer. Regions are
// delivered as independent messages, so they arrive in no particular order.
type RegionMsg struct {
	Region scroll.Region
}

// IdleMsg fires when scrolling has been quiet for the idle delay.
type IdleMsg struct {
	Generation int
	Time       time.Time
}

// FrameMsg advances a running snap or jump transition.
type FrameMsg struct {
	Generation int
	Time       time.Time
}

// ActiveSectionMsg reports that a different section is now under the
// viewport.
type ActiveSectionMsg struct {
	ID string
}
