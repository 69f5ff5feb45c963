package page

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dirkx/dirkx/internal/keymap"
	"github.com/dirkx/dirkx/internal/scroll"
)

// snapThreshold is the smallest offset change, in lines, worth animating.
const snapThreshold = 0.5

// Update handles page messages: region registration, settle windows, mouse
// wheel, idle snaps and animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegionMsg:
		cmd, err := m.seq.Register(msg.Region)
		if err != nil {
			m.log.Warn("section region rejected", zap.String("section", msg.Region.ID), zap.Error(err))
		}
		return m, cmd

	case scroll.SettledMsg:
		m.seq.HandleSettled(msg)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		step := float64(m.cfg.WheelStepLines)
		switch msg.Button { //nolint:exhaustive // only the wheel scrolls
		case tea.MouseButtonWheelUp:
			return m.ScrollBy(-step)
		case tea.MouseButtonWheelDown:
			return m.ScrollBy(step)
		}
		return m, nil

	case IdleMsg:
		if msg.Generation != m.idleGen {
			return m, nil
		}
		return m.snap(msg.Time)

	case FrameMsg:
		if msg.Generation != m.animGen || m.anim == nil {
			return m, nil
		}
		return m.frame(msg.Time)
	}
	return m, nil
}

// HandleAction applies a page-context key action. Returns false if the
// action is not a page action.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd, bool) {
	h := float64(m.height)
	var cmd tea.Cmd
	switch a { //nolint:exhaustive // non-page actions fall through
	case keymap.ActionScrollDown:
		m, cmd = m.ScrollBy(1)
	case keymap.ActionScrollUp:
		m, cmd = m.ScrollBy(-1)
	case keymap.ActionPageDown:
		m, cmd = m.ScrollBy(h)
	case keymap.ActionPageUp:
		m, cmd = m.ScrollBy(-h)
	case keymap.ActionHalfDown:
		m, cmd = m.ScrollBy(math.Floor(h / 2))
	case keymap.ActionHalfUp:
		m, cmd = m.ScrollBy(-math.Floor(h / 2))
	case keymap.ActionTop:
		m, cmd = m.animateTo(0, time.Now())
	case keymap.ActionBottom:
		m, cmd = m.animateTo(m.distance, time.Now())
	case keymap.ActionNextSection:
		m, cmd = m.JumpTo(m.neighbor(1))
	case keymap.ActionPrevSection:
		m, cmd = m.JumpTo(m.neighbor(-1))
	default:
		return m, nil, false
	}
	return m, cmd, true
}

// ScrollBy moves the page by delta scroll units. Any running transition is
// cancelled and an idle snap is scheduled.
func (m Model) ScrollBy(delta float64) (Model, tea.Cmd) {
	m.cancelAnimation()
	m.offset = max(0, min(m.distance, m.offset+delta))
	m, activeCmd := m.sync()
	return m, tea.Batch(activeCmd, m.scheduleIdle())
}

// JumpTo animates the page to the top of the named section. Unknown IDs
// are ignored.
func (m Model) JumpTo(id string) (Model, tea.Cmd) {
	for _, sl := range m.slots {
		if sl.id == id {
			return m.animateTo(min(sl.scrollStart, m.distance), time.Now())
		}
	}
	return m, nil
}

func (m Model) neighbor(dir int) string {
	for i, sl := range m.slots {
		if sl.id != m.active {
			continue
		}
		j := max(0, min(len(m.slots)-1, i+dir))
		return m.slots[j].id
	}
	return ""
}

func (m *Model) cancelAnimation() {
	m.anim = nil
	m.animGen++
}

func (m *Model) scheduleIdle() tea.Cmd {
	m.idleGen++
	if m.cfg.DisableSnap {
		return nil
	}
	gen := m.idleGen
	return tea.Tick(m.cfg.IdleDelay(), func(t time.Time) tea.Msg {
		return IdleMsg{Generation: gen, Time: t}
	})
}

// snap asks the sequencer where to settle and animates there.
func (m Model) snap(now time.Time) (Model, tea.Cmd) {
	if m.distance <= 0 {
		return m, nil
	}
	v := m.Progress()
	target := m.seq.ComputeSnapTarget(v) * m.distance
	if math.Abs(target-m.offset) < snapThreshold {
		return m, nil
	}
	m.log.Debug("snapping", zap.Float64("from", v), zap.Float64("to", target/m.distance))
	return m.animateTo(target, now)
}

// animateTo starts an eased transition to offset. The duration scales with
// the distance travelled in progress units.
func (m Model) animateTo(offset float64, now time.Time) (Model, tea.Cmd) {
	m.idleGen++
	if m.distance <= 0 {
		return m, nil
	}
	offset = max(0, min(m.distance, offset))
	minD, maxD := m.cfg.SnapBounds()
	tr := scroll.NewTransition(m.Progress(), offset/m.distance, now, minD, maxD)
	m.anim = &tr
	m.animGen++
	return m, m.nextFrame()
}

func (m Model) frame(now time.Time) (Model, tea.Cmd) {
	v, done := m.anim.At(now)
	m.offset = max(0, min(m.distance, v*m.distance))
	if done {
		m.anim = nil
	}
	m, activeCmd := m.sync()
	if done {
		return m, activeCmd
	}
	return m, tea.Batch(activeCmd, m.nextFrame())
}

func (m Model) nextFrame() tea.Cmd {
	gen := m.animGen
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: gen, Time: t}
	})
}
