package scroll

import (
	"cmp"
	"math"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	// DefaultTolerance widens every pinned range on both sides when deciding
	// whether a query should snap.
	DefaultTolerance = 0.02

	// DefaultSettleDelay is how long registrations must stay quiet before the
	// pinned ranges are built.
	DefaultSettleDelay = 500 * time.Millisecond
)

// SettledMsg is delivered when a settle window elapses.
type SettledMsg struct {
	Generation int
}

// Sequencer owns the registered regions and answers snap queries.
// It is not safe for concurrent use; all calls are expected to come from the
// bubbletea update loop.
type Sequencer struct {
	tolerance   float64
	settleDelay time.Duration
	log         *zap.Logger

	regions  map[string]Region
	distance float64
	expected int

	generation int
	ranges     []Range
	ready      bool
	closed     bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithTolerance sets the snap tolerance in progress units.
func WithTolerance(eps float64) Option {
	return func(s *Sequencer) {
		if eps >= 0 && isFinite(eps) {
			s.tolerance = eps
		}
	}
}

// WithSettleDelay sets the settle window.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Sequencer) {
		if d >= 0 {
			s.settleDelay = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty, inert sequencer.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		tolerance:   DefaultTolerance,
		settleDelay: DefaultSettleDelay,
		log:         zap.NewNop(),
		regions:     make(map[string]Region),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds or replaces a region. Invalid regions are rejected and do not
// disturb the current set. The returned command fires the settle window.
func (s *Sequencer) Register(r Region) (tea.Cmd, error) {
	if s.closed {
		return nil, nil
	}
	if err := r.Validate(); err != nil {
		s.log.Warn("rejected scroll region", zap.Error(err))
		return nil, err
	}
	s.regions[r.ID] = r
	return s.invalidate(), nil
}

// Unregister removes a region. Unknown ids are ignored.
func (s *Sequencer) Unregister(id string) tea.Cmd {
	if s.closed {
		return nil
	}
	if _, ok := s.regions[id]; !ok {
		return nil
	}
	delete(s.regions, id)
	return s.invalidate()
}

// SetScrollDistance records the total scrollable distance. A change discards
// the built ranges so no query observes ranges normalized against the old
// distance. With an expected count set, the registered regions are dropped
// too: they describe the old layout and the owner re-registers the full set.
func (s *Sequencer) SetScrollDistance(d float64) tea.Cmd {
	if s.closed || !isFinite(d) {
		return nil
	}
	d = math.Max(d, 0)
	if d == s.distance && s.ready {
		return nil
	}
	if d != s.distance && s.expected > 0 {
		s.regions = make(map[string]Region)
	}
	s.distance = d
	return s.invalidate()
}

// Reset drops every registered region and records a new scroll distance.
// Ranges stay unbuilt until the regions of the new layout register again.
func (s *Sequencer) Reset(d float64) tea.Cmd {
	if s.closed || !isFinite(d) {
		return nil
	}
	s.regions = make(map[string]Region)
	s.distance = math.Max(d, 0)
	return s.invalidate()
}

// Expect sets the number of regions that make the set complete. Once that many
// are registered the ranges are built immediately instead of waiting for the
// settle window. Zero disables the shortcut.
func (s *Sequencer) Expect(n int) {
	s.expected = max(n, 0)
}

// HandleSettled builds the pinned ranges if msg belongs to the latest settle
// window. Returns true if the ranges were rebuilt.
func (s *Sequencer) HandleSettled(msg SettledMsg) bool {
	if s.closed || msg.Generation != s.generation {
		return false
	}
	s.build()
	return true
}

// Ready reports whether the ranges reflect the current registrations.
func (s *Sequencer) Ready() bool {
	return s.ready && !s.closed
}

// Generation returns the current settle generation.
func (s *Sequencer) Generation() int {
	return s.generation
}

// Ranges returns a copy of the built pinned ranges in document order.
func (s *Sequencer) Ranges() []Range {
	if !s.Ready() {
		return nil
	}
	return slices.Clone(s.ranges)
}

// Regions returns the registered regions sorted by start.
func (s *Sequencer) Regions() []Region {
	out := make([]Region, 0, len(s.regions))
	for _, r := range s.regions {
		out = append(out, r)
	}
	sortRegions(out)
	return out
}

// ComputeSnapTarget returns where the scroll driver should settle for
// progress v. Outside every pinned band (and whenever the sequencer is inert)
// v is returned unchanged.
func (s *Sequencer) ComputeSnapTarget(v float64) float64 {
	if !s.Ready() || len(s.ranges) == 0 {
		return v
	}

	inPinned := false
	for _, r := range s.ranges {
		if r.Contains(v, s.tolerance) {
			inPinned = true
			break
		}
	}
	if !inPinned {
		return v
	}

	target := s.ranges[0].Center
	for _, r := range s.ranges[1:] {
		if math.Abs(r.Center-v) < math.Abs(target-v) {
			target = r.Center
		}
	}
	return target
}

// Close drops every region and invalidates any pending settle window so a
// late SettledMsg cannot rebuild state.
func (s *Sequencer) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.generation++
	s.regions = make(map[string]Region)
	s.ranges = nil
	s.ready = false
	s.log.Debug("scroll sequencer closed")
}

// invalidate discards built ranges and either rebuilds immediately (expected
// count reached) or schedules a fresh settle window. Any earlier window is
// superseded by bumping the generation.
func (s *Sequencer) invalidate() tea.Cmd {
	s.generation++
	s.ranges = nil
	s.ready = false

	if s.expected > 0 && len(s.regions) == s.expected {
		s.build()
		return nil
	}

	gen := s.generation
	return tea.Tick(s.settleDelay, func(time.Time) tea.Msg {
		return SettledMsg{Generation: gen}
	})
}

func (s *Sequencer) build() {
	s.ready = true
	s.ranges = nil

	if s.distance <= 0 {
		s.log.Debug("scroll sequencer inert", zap.String("reason", "no scroll distance"))
		return
	}

	pinned := make([]Region, 0, len(s.regions))
	for _, r := range s.regions {
		if r.Pinned {
			pinned = append(pinned, r)
		}
	}
	if len(pinned) == 0 {
		s.log.Debug("scroll sequencer inert", zap.String("reason", "no pinned regions"))
		return
	}
	sortRegions(pinned)

	s.ranges = make([]Range, 0, len(pinned))
	for _, r := range pinned {
		start := clamp01(r.Start / s.distance)
		end := clamp01(r.End / s.distance)
		s.ranges = append(s.ranges, Range{
			ID:     r.ID,
			Start:  start,
			End:    end,
			Center: start + (end-start)*0.5,
		})
	}

	s.log.Debug("scroll ranges built",
		zap.Int("generation", s.generation),
		zap.Int("pinned", len(s.ranges)),
		zap.Float64("distance", s.distance))
}

func sortRegions(rs []Region) {
	slices.SortFunc(rs, func(a, b Region) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
