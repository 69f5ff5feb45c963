package scroll

import (
	"errors"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const floatEps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < floatEps
}

func newQuick() *Sequencer {
	return New(WithSettleDelay(time.Millisecond))
}

// newReady builds a sequencer over a distance of 100 lines with the given
// regions and settles it.
func newReady(t *testing.T, regions ...Region) *Sequencer {
	t.Helper()
	s := newQuick()
	s.SetScrollDistance(100)
	for _, r := range regions {
		if _, err := s.Register(r); err != nil {
			t.Fatalf("Register(%+v) error = %v", r, err)
		}
	}
	if !s.HandleSettled(SettledMsg{Generation: s.Generation()}) {
		t.Fatal("HandleSettled() = false, want true")
	}
	return s
}

func settleFromCmd(t *testing.T, cmd tea.Cmd) SettledMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected settle command, got nil")
	}
	raw := cmd()
	msg, ok := raw.(SettledMsg)
	if !ok {
		t.Fatalf("expected SettledMsg, got %T", raw)
	}
	return msg
}

func TestComputeSnapTarget_ExampleRegions(t *testing.T) {
	s := newReady(t,
		Region{ID: "a", Start: 0, End: 20, Pinned: true},
		Region{ID: "b", Start: 50, End: 70, Pinned: true},
	)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"between bands is free", 0.45, 0.45},
		{"inside A snaps to A", 0.19, 0.10},
		{"inside B snaps to B", 0.52, 0.60},
		{"within A tolerance", 0.219, 0.10},
		{"just past A tolerance", 0.2201, 0.2201},
		{"within B lower tolerance", 0.481, 0.60},
		{"past the end is free", 0.9, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ComputeSnapTarget(tt.in)
			if !approx(got, tt.want) {
				t.Errorf("ComputeSnapTarget(%g) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeSnapTarget_FreeScrollIsIdentity(t *testing.T) {
	s := newReady(t,
		Region{ID: "boot", Start: 0, End: 10, Pinned: true},
		Region{ID: "markets", Start: 10, End: 40},
		Region{ID: "dash", Start: 40, End: 60, Pinned: true},
	)

	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		inBand := false
		for _, r := range s.Ranges() {
			if r.Contains(v, DefaultTolerance) {
				inBand = true
			}
		}
		if inBand {
			continue
		}
		if got := s.ComputeSnapTarget(v); got != v {
			t.Fatalf("ComputeSnapTarget(%g) = %g, want identity", v, got)
		}
	}
}

func TestComputeSnapTarget_NearestCenterWins(t *testing.T) {
	// Tolerance zones of a and b overlap around 0.31.
	s := newReady(t,
		Region{ID: "a", Start: 0, End: 30, Pinned: true},
		Region{ID: "b", Start: 32, End: 36, Pinned: true},
	)

	// Inside both bands; b's center (0.34) is nearer than a's (0.15).
	if got := s.ComputeSnapTarget(0.31); !approx(got, 0.34) {
		t.Errorf("ComputeSnapTarget(0.31) = %g, want 0.34", got)
	}
}

func TestComputeSnapTarget_TieKeepsFirst(t *testing.T) {
	s := newQuick()
	s.SetScrollDistance(64)
	s.Register(Region{ID: "a", Start: 0, End: 16, Pinned: true})
	s.Register(Region{ID: "b", Start: 16, End: 32, Pinned: true})
	s.HandleSettled(SettledMsg{Generation: s.Generation()})

	// 0.25 is exactly equidistant from 0.125 and 0.375.
	if got := s.ComputeSnapTarget(0.25); got != 0.125 {
		t.Errorf("ComputeSnapTarget(0.25) = %g, want 0.125", got)
	}
}

func TestComputeSnapTarget_NoPinnedRegionsIsIdentity(t *testing.T) {
	s := newReady(t,
		Region{ID: "markets", Start: 0, End: 50},
		Region{ID: "log", Start: 50, End: 100},
	)
	for _, v := range []float64{0, 0.01, 0.25, 0.5, 0.99, 1} {
		if got := s.ComputeSnapTarget(v); got != v {
			t.Errorf("ComputeSnapTarget(%g) = %g, want %g", v, got, v)
		}
	}
	if len(s.Ranges()) != 0 {
		t.Errorf("Ranges() = %v, want empty", s.Ranges())
	}
}

func TestComputeSnapTarget_EmptySequencerIsIdentity(t *testing.T) {
	s := newQuick()
	for _, v := range []float64{0, 0.3, 1} {
		if got := s.ComputeSnapTarget(v); got != v {
			t.Errorf("ComputeSnapTarget(%g) = %g, want %g", v, got, v)
		}
	}
}

func TestComputeSnapTarget_ZeroDistanceIsInert(t *testing.T) {
	s := newQuick()
	cmd, err := s.Register(Region{ID: "boot", Start: 0, End: 10, Pinned: true})
	if err != nil {
		t.Fatal(err)
	}
	s.HandleSettled(settleFromCmd(t, cmd))

	if !s.Ready() {
		t.Fatal("expected sequencer to be ready (inert)")
	}
	if got := s.ComputeSnapTarget(0.05); got != 0.05 {
		t.Errorf("ComputeSnapTarget(0.05) = %g, want 0.05", got)
	}
}

func TestComputeSnapTarget_DegenerateRegion(t *testing.T) {
	s := newReady(t, Region{ID: "flash", Start: 40, End: 40, Pinned: true})

	ranges := s.Ranges()
	if len(ranges) != 1 || !approx(ranges[0].Center, 0.4) {
		t.Fatalf("Ranges() = %+v, want one range centered at 0.4", ranges)
	}
	if got := s.ComputeSnapTarget(0.41); !approx(got, 0.4) {
		t.Errorf("ComputeSnapTarget(0.41) = %g, want 0.4", got)
	}
}

func TestRegister_OutOfOrderRegistrationIsSorted(t *testing.T) {
	s := newReady(t,
		Region{ID: "late", Start: 60, End: 80, Pinned: true},
		Region{ID: "early", Start: 0, End: 20, Pinned: true},
	)
	ranges := s.Ranges()
	if len(ranges) != 2 {
		t.Fatalf("len(Ranges()) = %d, want 2", len(ranges))
	}
	if ranges[0].ID != "early" || ranges[1].ID != "late" {
		t.Errorf("ranges out of order: %s, %s", ranges[0].ID, ranges[1].ID)
	}
}

func TestRegister_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		region Region
	}{
		{"end before start", Region{ID: "x", Start: 10, End: 5, Pinned: true}},
		{"negative start", Region{ID: "x", Start: -1, End: 5, Pinned: true}},
		{"empty id", Region{Start: 0, End: 5, Pinned: true}},
		{"nan", Region{ID: "x", Start: math.NaN(), End: 5, Pinned: true}},
		{"inf", Region{ID: "x", Start: 0, End: math.Inf(1), Pinned: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuick()
			s.SetScrollDistance(100)
			cmd, err := s.Register(tt.region)
			if !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("Register() error = %v, want ErrInvalidRegion", err)
			}
			if cmd != nil {
				t.Error("rejected registration should not schedule a settle")
			}
			if len(s.Regions()) != 0 {
				t.Errorf("Regions() = %v, want empty", s.Regions())
			}
		})
	}
}

func TestRegister_InvalidDoesNotDisturbBuiltRanges(t *testing.T) {
	s := newReady(t, Region{ID: "a", Start: 0, End: 20, Pinned: true})
	if _, err := s.Register(Region{ID: "bad", Start: 30, End: 10, Pinned: true}); err == nil {
		t.Fatal("expected error")
	}
	if !s.Ready() {
		t.Error("ranges were discarded by a rejected registration")
	}
	if got := s.ComputeSnapTarget(0.05); !approx(got, 0.1) {
		t.Errorf("ComputeSnapTarget(0.05) = %g, want 0.1", got)
	}
}

func TestSettle_StaleGenerationIgnored(t *testing.T) {
	s := newQuick()
	s.SetScrollDistance(100)

	first, _ := s.Register(Region{ID: "a", Start: 0, End: 20, Pinned: true})
	second, _ := s.Register(Region{ID: "b", Start: 50, End: 70, Pinned: true})

	stale := settleFromCmd(t, first)
	if s.HandleSettled(stale) {
		t.Error("stale settle rebuilt ranges")
	}
	if s.Ready() {
		t.Error("sequencer should not be ready after a stale settle")
	}
	if got := s.ComputeSnapTarget(0.1); got != 0.1 {
		t.Errorf("snap before settle = %g, want identity", got)
	}

	if !s.HandleSettled(settleFromCmd(t, second)) {
		t.Fatal("current settle ignored")
	}
	if len(s.Ranges()) != 2 {
		t.Errorf("len(Ranges()) = %d, want 2", len(s.Ranges()))
	}
}

func TestSetScrollDistance_ResizeDiscardsStaleRanges(t *testing.T) {
	s := newReady(t, Region{ID: "a", Start: 0, End: 20, Pinned: true})

	// Page grows: the same region now covers a smaller share.
	cmd := s.SetScrollDistance(200)
	if s.Ready() {
		t.Fatal("ranges must not be queried after a resize")
	}
	if got := s.ComputeSnapTarget(0.1); got != 0.1 {
		t.Errorf("snap during resize = %g, want identity", got)
	}

	s.HandleSettled(settleFromCmd(t, cmd))
	ranges := s.Ranges()
	if len(ranges) != 1 || !approx(ranges[0].End, 0.1) || !approx(ranges[0].Center, 0.05) {
		t.Errorf("Ranges() after resize = %+v", ranges)
	}
}

func TestSetScrollDistance_UnchangedKeepsRanges(t *testing.T) {
	s := newReady(t, Region{ID: "a", Start: 0, End: 20, Pinned: true})
	if cmd := s.SetScrollDistance(100); cmd != nil {
		t.Error("unchanged distance scheduled a settle")
	}
	if !s.Ready() {
		t.Error("unchanged distance discarded ranges")
	}
}

func TestExpect_BuildsWhenCountReached(t *testing.T) {
	s := newQuick()
	s.Expect(2)
	s.SetScrollDistance(100)

	cmd, _ := s.Register(Region{ID: "a", Start: 0, End: 20, Pinned: true})
	if cmd == nil {
		t.Fatal("first of two registrations should wait for settle")
	}
	cmd, _ = s.Register(Region{ID: "b", Start: 20, End: 100})
	if cmd != nil {
		t.Error("completing the expected set should build immediately")
	}
	if !s.Ready() {
		t.Fatal("expected ready after expected count reached")
	}
	if got := s.ComputeSnapTarget(0.15); !approx(got, 0.1) {
		t.Errorf("ComputeSnapTarget(0.15) = %g, want 0.1", got)
	}
}

func TestExpect_ResizeWaitsForFullReregistration(t *testing.T) {
	s := newQuick()
	s.Expect(2)
	s.SetScrollDistance(100)
	s.Register(Region{ID: "a", Start: 0, End: 20, Pinned: true})
	s.Register(Region{ID: "b", Start: 20, End: 100})
	if !s.Ready() {
		t.Fatal("expected ready before the resize")
	}

	s.SetScrollDistance(200)
	if s.Ready() {
		t.Fatal("old regions must not be rebuilt against the new distance")
	}
	if len(s.Regions()) != 0 {
		t.Errorf("Regions() = %+v, want none until re-registered", s.Regions())
	}

	s.Register(Region{ID: "a", Start: 0, End: 40, Pinned: true})
	if s.Ready() {
		t.Error("ready with one of two regions re-registered")
	}
	s.Register(Region{ID: "b", Start: 40, End: 200})
	if !s.Ready() {
		t.Fatal("expected ready once every region re-registered")
	}
	ranges := s.Ranges()
	if len(ranges) != 1 || !approx(ranges[0].End, 0.2) || !approx(ranges[0].Center, 0.1) {
		t.Errorf("Ranges() after resize = %+v", ranges)
	}
}

func TestReset_DropsRegions(t *testing.T) {
	s := newReady(t, Region{ID: "a", Start: 0, End: 20, Pinned: true})
	s.Expect(1)

	// Same distance, new layout: nothing may be served until it registers.
	cmd := s.Reset(100)
	if s.Ready() || len(s.Regions()) != 0 {
		t.Fatal("Reset kept the old layout")
	}
	if got := s.ComputeSnapTarget(0.1); got != 0.1 {
		t.Errorf("snap after reset = %g, want identity", got)
	}

	s.Register(Region{ID: "a", Start: 0, End: 50, Pinned: true})
	if !s.Ready() {
		t.Fatal("expected ready after the layout re-registered")
	}
	if s.HandleSettled(settleFromCmd(t, cmd)) {
		t.Error("settle from before the re-registration rebuilt ranges")
	}
	if got := s.ComputeSnapTarget(0.3); !approx(got, 0.25) {
		t.Errorf("ComputeSnapTarget(0.3) = %g, want 0.25", got)
	}
}

func TestUnregister(t *testing.T) {
	s := newReady(t,
		Region{ID: "a", Start: 0, End: 20, Pinned: true},
		Region{ID: "b", Start: 50, End: 70, Pinned: true},
	)

	if cmd := s.Unregister("missing"); cmd != nil {
		t.Error("unregistering an unknown id scheduled a settle")
	}

	cmd := s.Unregister("a")
	s.HandleSettled(settleFromCmd(t, cmd))

	if got := s.ComputeSnapTarget(0.1); got != 0.1 {
		t.Errorf("snap into removed region = %g, want identity", got)
	}
	if got := s.ComputeSnapTarget(0.55); !approx(got, 0.6) {
		t.Errorf("ComputeSnapTarget(0.55) = %g, want 0.6", got)
	}
}

func TestClose_CancelsPendingSettle(t *testing.T) {
	s := newQuick()
	s.SetScrollDistance(100)
	cmd, _ := s.Register(Region{ID: "a", Start: 0, End: 20, Pinned: true})
	pending := settleFromCmd(t, cmd)

	s.Close()

	if s.HandleSettled(pending) {
		t.Error("settle after Close rebuilt ranges")
	}
	if got := s.ComputeSnapTarget(0.1); got != 0.1 {
		t.Errorf("snap after Close = %g, want identity", got)
	}
	if cmd, err := s.Register(Region{ID: "b", Start: 0, End: 5, Pinned: true}); cmd != nil || err != nil {
		t.Error("register after Close should be a silent no-op")
	}
	if len(s.Regions()) != 0 {
		t.Error("Close did not release regions")
	}
}

func TestRanges_ClampedToUnitInterval(t *testing.T) {
	// A pinned region that extends past the scroll distance.
	s := newReady(t, Region{ID: "tail", Start: 80, End: 130, Pinned: true})
	r := s.Ranges()[0]
	if r.End != 1 {
		t.Errorf("End = %g, want 1", r.End)
	}
	if !approx(r.Center, 0.9) {
		t.Errorf("Center = %g, want 0.9", r.Center)
	}
}

func TestWithTolerance(t *testing.T) {
	s := New(WithTolerance(0))
	s.SetScrollDistance(100)
	s.Register(Region{ID: "a", Start: 0, End: 20, Pinned: true})
	s.HandleSettled(SettledMsg{Generation: s.Generation()})

	if got := s.ComputeSnapTarget(0.21); got != 0.21 {
		t.Errorf("zero tolerance snapped 0.21 to %g", got)
	}
}
