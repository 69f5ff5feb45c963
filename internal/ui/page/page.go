// Package page renders the dashboard as one long scrollable page of sections
// and drives the scroll sequencer: it registers a region per section,
// maps scroll offset to document offset through pinned holds, and snaps
// into pinned sections once scrolling goes quiet.
package page

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dirkx/dirkx/internal/config"
	"github.com/dirkx/dirkx/internal/scroll"
	"github.com/dirkx/dirkx/internal/ui/sections"
)

// FrameInterval is the animation frame period.
const FrameInterval = 16 * time.Millisecond

// Model is the page component.
type Model struct {
	seq  *scroll.Sequencer
	cfg  config.ScrollConfig
	log  *zap.Logger
	secs []sections.Section
	data sections.Data

	width, height int
	vp            viewport.Model

	cache     [][]string // rendered flowing sections, nil for pinned
	slots     []slot
	docHeight int
	distance  float64

	offset float64 // scroll offset in [0, distance]
	active string

	idleGen int
	animGen int
	anim    *scroll.Transition
}

// New creates a page over the given sequencer. The sequencer is shared so
// the owner can close it on teardown.
func New(seq *scroll.Sequencer, cfg config.ScrollConfig, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	secs := sections.All()
	seq.Expect(len(secs))
	return Model{
		seq:  seq,
		cfg:  cfg,
		log:  log,
		secs: secs,
		vp:   viewport.New(0, 0),
	}
}

// Sections returns the page sections in document order.
func (m Model) Sections() []sections.Section {
	return m.secs
}

// Active returns the ID of the section under the viewport.
func (m Model) Active() string {
	return m.active
}

// Offset returns the scroll offset.
func (m Model) Offset() float64 {
	return m.offset
}

// Distance returns the total scroll distance.
func (m Model) Distance() float64 {
	return m.distance
}

// Progress returns the scroll offset normalized to [0,1].
func (m Model) Progress() float64 {
	if m.distance <= 0 {
		return 0
	}
	return m.offset / m.distance
}

// Animating reports whether a transition is running.
func (m Model) Animating() bool {
	return m.anim != nil
}

// SetSize resizes the page. The layout is rebuilt and every region is
// re-registered; the scroll position keeps its progress.
func (m Model) SetSize(width, height int) (Model, tea.Cmd) {
	if width == m.width && height == m.height {
		return m, nil
	}
	m.width, m.height = width, height
	m.vp.Width, m.vp.Height = width, height
	return m.relayout(true)
}

// SetData replaces the rendered data. Regions are only re-registered when a
// section's height changed.
func (m Model) SetData(d sections.Data) (Model, tea.Cmd) {
	m.data = d
	return m.relayout(false)
}

// View renders the visible window of the page.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.vp.View()
}

func (m Model) relayout(force bool) (Model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}

	heights := make([]int, len(m.secs))
	cache := make([][]string, len(m.secs))
	for i, sec := range m.secs {
		if sec.Pinned {
			continue
		}
		cache[i] = sec.Render(m.data, m.width, m.height, 0)
		heights[i] = len(cache[i])
	}
	m.cache = cache

	slots, docHeight, distance := plan(m.secs, heights, m.height, m.cfg.PinLengthPct)
	changed := force || !sameSlots(slots, m.slots)

	progress := m.Progress()
	m.slots, m.docHeight = slots, docHeight
	if !changed {
		return m.sync()
	}

	m.distance = distance
	m.offset = progress * distance

	// Regions measured for the old layout must not be normalized against
	// the new distance, so the set starts over.
	cmds := []tea.Cmd{m.seq.Reset(distance)}
	for _, sl := range slots {
		r := sl.region()
		cmds = append(cmds, func() tea.Msg { return RegionMsg{Region: r} })
	}
	m.log.Debug("page layout",
		zap.Int("doc_height", docHeight),
		zap.Float64("distance", distance),
		zap.Int("viewport", m.height))

	m, cmd := m.sync()
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func sameSlots(a, b []slot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sync renders the document for the current offset into the viewport and
// reports a change of active section.
func (m Model) sync() (Model, tea.Cmd) {
	maxDoc := max(m.docHeight-m.height, 0)
	doc := docOffset(m.slots, m.offset, maxDoc)

	var b strings.Builder
	for i, sl := range m.slots {
		var lines []string
		if sl.pinned {
			lines = m.secs[i].Render(m.data, m.width, m.height, pinProgress(sl, m.offset))
		} else {
			lines = m.cache[i]
		}
		for _, l := range lines {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(l)
		}
	}
	m.vp.SetContent(b.String())
	m.vp.SetYOffset(int(math.Round(doc)))

	active := activeAt(m.slots, doc, m.height)
	if m.distance > 0 && m.offset >= m.distance-0.5 && len(m.slots) > 0 {
		active = m.slots[len(m.slots)-1].id
	}
	if active == m.active {
		return m, nil
	}
	m.active = active
	return m, func() tea.Msg { return ActiveSectionMsg{ID: active} }
}
