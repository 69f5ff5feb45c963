// Package boot drives the startup sequence: boot lines typed one after the
// other while a progress bar fills, followed by a scroll-driven exit phase
// once the page takes over.
package boot

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/scroll"
)

// Timeline defaults.
const (
	LineInterval     = 80 * time.Millisecond
	ProgressDuration = 1200 * time.Millisecond
	Hold             = 400 * time.Millisecond
	FrameInterval    = 33 * time.Millisecond
)

// Exit phase boundaries, in pin progress.
const (
	exitStart     = 0.70
	scanlineStart = 0.78
	exitScale     = 0.92
)

// Frame is the boot screen at one instant.
type Frame struct {
	VisibleLines int
	Progress     int // percent
	Done         bool
}

// Timeline computes frames as a pure function of elapsed time.
type Timeline struct {
	Lines int
}

// Duration is how long the sequence runs before it reports done.
func (t Timeline) Duration() time.Duration {
	typed := time.Duration(t.Lines) * LineInterval
	return max(typed, ProgressDuration) + Hold
}

// At returns the frame after elapsed time.
func (t Timeline) At(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	lines := min(int(elapsed/LineInterval), t.Lines)
	p := scroll.EaseOutQuad(float64(elapsed) / float64(ProgressDuration))
	return Frame{
		VisibleLines: lines,
		Progress:     int(math.Round(p * 100)),
		Done:         elapsed >= t.Duration(),
	}
}

// Complete is the frame shown once the sequence is finished or skipped.
func (t Timeline) Complete() Frame {
	return Frame{VisibleLines: t.Lines, Progress: 100, Done: true}
}

// ExitFrame describes the boot card while the page scrolls past it.
type ExitFrame struct {
	CardOpacity     float64
	CardScale       float64
	ScanlineX       float64 // -1.1 (off left) to 1.1 (off right), in widths
	ScanlineOpacity float64
}

// Exit maps pin progress in [0,1] to the exit animation. The card holds
// until 70% then shrinks and fades; a scanline wipes across from 78%.
func Exit(progress float64) ExitFrame {
	progress = math.Max(0, math.Min(1, progress))

	f := ExitFrame{CardOpacity: 1, CardScale: 1, ScanlineX: -1.1}
	if progress > exitStart {
		e := scroll.EaseInQuad((progress - exitStart) / (1 - exitStart))
		f.CardOpacity = 1 - e
		f.CardScale = 1 - (1-exitScale)*e
	}
	if progress > scanlineStart {
		e := scroll.EaseInOutQuad((progress - scanlineStart) / (1 - scanlineStart))
		f.ScanlineX = -1.1 + 2.2*e
		f.ScanlineOpacity = 0.35 * (1 - e)
	}
	return f
}

// FrameMsg advances the boot animation.
type FrameMsg struct {
	Generation int
	Time       time.Time
}

// DoneMsg is sent once when the sequence completes or is skipped.
type DoneMsg struct {
	Skipped bool
}

// Model plays the boot sequence inside a bubbletea program.
type Model struct {
	timeline   Timeline
	start      time.Time
	frame      Frame
	generation int
	finished   bool
}

// New creates a boot model for the given number of boot lines.
func New(lines int) Model {
	return Model{timeline: Timeline{Lines: lines}}
}

// Init starts the animation clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Start resets the clock to now and returns the first frame command.
func (m *Model) Start(now time.Time) tea.Cmd {
	m.start = now
	m.generation++
	m.frame = m.timeline.At(0)
	m.finished = false
	return m.tick()
}

// Update handles frame ticks and skip keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if m.start.IsZero() {
			m.start = msg.Time
		}
		m.frame = m.timeline.At(msg.Time.Sub(m.start))
		if m.frame.Done {
			m.finished = true
			return m, done(false)
		}
		return m, m.tick()
	case tea.KeyMsg:
		m.frame = m.timeline.Complete()
		m.finished = true
		m.generation++
		return m, done(true)
	}
	return m, nil
}

// Frame returns the current frame.
func (m Model) Frame() Frame { return m.frame }

// Finished reports whether the sequence has completed or been skipped.
func (m Model) Finished() bool { return m.finished }

func (m Model) tick() tea.Cmd {
	gen := m.generation
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: gen, Time: t}
	})
}

func done(skipped bool) tea.Cmd {
	return func() tea.Msg { return DoneMsg{Skipped: skipped} }
}
