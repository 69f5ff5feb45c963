package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dirkx/dirkx/internal/app/popupctl"
	"github.com/dirkx/dirkx/internal/boot"
	"github.com/dirkx/dirkx/internal/errmsg"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/scroll"
	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/about"
	"github.com/dirkx/dirkx/internal/ui/action"
	"github.com/dirkx/dirkx/internal/ui/headerbar"
	"github.com/dirkx/dirkx/internal/ui/helpbindings"
	"github.com/dirkx/dirkx/internal/ui/layout"
	"github.com/dirkx/dirkx/internal/ui/page"
	"github.com/dirkx/dirkx/internal/ui/sections"
	"github.com/dirkx/dirkx/internal/ui/tickerbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.Booting || m.Palette.IsOpen() || m.Popups.ActivePopup() != popupctl.None {
			return m, nil
		}
		var cmd tea.Cmd
		m.Page, cmd = m.Page.Update(msg)
		return m, cmd

	case boot.FrameMsg:
		var cmd tea.Cmd
		m.Boot, cmd = m.Boot.Update(msg)
		return m, cmd

	case boot.DoneMsg:
		return m.handleBootDone(msg)

	case page.RegionMsg, page.IdleMsg, page.FrameMsg, scroll.SettledMsg:
		var cmd tea.Cmd
		m.Page, cmd = m.Page.Update(msg)
		return m, cmd

	case page.ActiveSectionMsg:
		m.log.Debug("active section", zap.String("section", msg.ID))
		m.StateMgr.SavePrefs(m.prefs())
		return m, nil

	case JumpMsg:
		var cmd tea.Cmd
		m.Page, cmd = m.Page.JumpTo(msg.Section)
		return m, cmd

	case ToggleSidebarMsg:
		return m.toggleSidebar()

	case ShowAboutMsg:
		return m, m.Popups.ShowAbout(m.aboutInfo())

	case ShowHelpMsg:
		return m, m.Popups.ShowHelp([]string{"global", "page", "palette"})

	case action.Msg:
		return m.handleUIAction(msg)

	case UptimeTickMsg:
		elapsed := msg.Time.Sub(m.lastUptime)
		if elapsed > 0 {
			m.Telemetry = telemetry.AdvanceUptime(m.Telemetry, elapsed)
			m.lastUptime = msg.Time
		}
		return m, UptimeTickCmd(m.telemetryCfg.UptimeInterval())

	case TelemetryTickMsg:
		m.Telemetry = telemetry.Tick(m.Telemetry, m.rng)
		return m.refreshPage(TelemetryTickCmd(m.telemetryCfg.TickInterval()))

	case MarketWalkMsg:
		next := MarketWalkCmd(m.marketCfg.WalkInterval())
		if m.Market.Source == market.SourceLive {
			return m, next
		}
		m.Market = market.Step(m.Market, m.rng, msg.Time)
		m.Ticker.Assets = m.Market.All()
		return m.refreshPage(next)

	case MarketRefreshMsg:
		if msg.Generation != 0 && msg.Generation != m.refreshGen {
			return m, nil
		}
		return m.handleMarketRefresh()

	case MarketFetchedMsg:
		return m.handleMarketFetched(msg)

	case TickerTickMsg:
		m.Ticker = m.Ticker.Advance()
		return m, TickerTickCmd()

	case StderrMsg:
		var cmd tea.Cmd
		m, cmd = m.notify(msg.Line)
		return m, tea.Batch(cmd, WatchStderr())

	case NotifyMsg:
		return m.notify(msg.Message)

	case NotificationClearMsg:
		for i, n := range m.Notifications {
			if n.ID == msg.ID {
				m.Notifications = append(m.Notifications[:i:i], m.Notifications[i+1:]...)
				return m.resize()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	m, cmd := m.resize()
	if m.Booting {
		return m, cmd
	}
	var jump tea.Cmd
	m, jump = m.restorePosition()
	return m, tea.Batch(cmd, jump)
}

// resize lays the page out for the space left by the bars.
func (m Model) resize() (Model, tea.Cmd) {
	if m.Width == 0 || m.Height == 0 {
		return m, nil
	}
	h := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:      headerbar.Height,
		TickerHeight:      tickerbar.Height(m.Ticker),
		NotificationCount: len(m.Notifications),
	})
	var cmd tea.Cmd
	m.Page, cmd = m.Page.SetSize(layout.PageWidth(m.Width, m.SidebarCollapsed), h)
	return m, cmd
}

func (m Model) handleBootDone(msg boot.DoneMsg) (tea.Model, tea.Cmd) {
	m.Booting = false
	m.log.Info("boot finished", zap.Bool("skipped", msg.Skipped))
	var cmd tea.Cmd
	m, cmd = m.restorePosition()
	return m, cmd
}

// restorePosition jumps once to the section saved in prefs.
func (m Model) restorePosition() (Model, tea.Cmd) {
	if m.restoreSection == "" || m.Width == 0 {
		return m, nil
	}
	id := m.restoreSection
	m.restoreSection = ""
	if _, ok := sections.Lookup(id); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.Page, cmd = m.Page.JumpTo(id)
	return m, cmd
}

// refreshPage re-renders the page from current data and appends next.
func (m Model) refreshPage(next tea.Cmd) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Page, cmd = m.Page.SetData(m.sectionData())
	return m, tea.Batch(cmd, next)
}

func (m Model) toggleSidebar() (Model, tea.Cmd) {
	m.SidebarCollapsed = !m.SidebarCollapsed
	m.StateMgr.SavePrefs(m.prefs())
	return m.resize()
}

func (m Model) handleMarketRefresh() (Model, tea.Cmd) {
	if m.fetcher == nil {
		return m.notify("Live market data is disabled (market.live = false)")
	}
	if m.Fetching {
		return m, nil
	}
	m.Fetching = true
	return m, FetchMarketCmd(m.fetcher, m.marketCfg.Timeout(), m.clock())
}

// handleMarketFetched applies a fetch result and schedules the next
// refresh. Bumping the generation retires any refresh already scheduled,
// so manual refreshes never fork a second polling chain.
func (m Model) handleMarketFetched(msg MarketFetchedMsg) (tea.Model, tea.Cmd) {
	m.Fetching = false
	m.Market = msg.Snapshot
	m.Ticker.Assets = m.Market.All()
	m.refreshGen++
	next := MarketRefreshCmd(m.marketCfg.RefreshInterval(), m.refreshGen)

	m, cmd := m.refreshPage(next)
	if msg.Err == nil {
		return m, cmd
	}
	m.log.Warn("market refresh degraded", zap.Error(msg.Err))
	text := errmsg.Format(errmsg.OpMarketFetch, msg.Err)
	if errors.Is(msg.Err, market.ErrRateLimited) {
		text = errmsg.FormatWith(errmsg.OpMarketFetch, "rate limited, showing simulated data", msg.Err)
	}
	m, notice := m.notify(text)
	return m, tea.Batch(cmd, notice)
}

func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
	case about.Close:
		m.Popups.Hide(popupctl.About)
	default:
		m.log.Debug("unhandled ui action", zap.String("source", msg.Source), zap.String("action", a.ActionType()))
	}
	return m, nil
}

// notify pushes a transient notification and schedules its removal.
func (m Model) notify(text string) (Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	m.nextNotificationID++
	id := m.nextNotificationID
	m.Notifications = append(m.Notifications, Notification{ID: id, Message: text})
	if len(m.Notifications) > MaxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-MaxNotifications:]
	}
	m, cmd := m.resize()
	return m, tea.Batch(NotificationClearCmd(id), cmd)
}

func (m Model) sectionData() sections.Data {
	return sections.Data{
		NodeName:  m.cfg.NodeName,
		Now:       m.clock(),
		Content:   m.Content,
		Market:    m.Market,
		Telemetry: m.Telemetry,
	}
}

func (m Model) aboutInfo() about.Info {
	secs := m.Page.Sections()
	names := make([]string, 0, len(secs))
	for _, s := range secs {
		names = append(names, s.Label)
	}
	return about.Info{
		NodeName: m.cfg.NodeName,
		Version:  m.version,
		Live:     m.Live(),
		Sections: names,
		Entries:  len(m.Content.Log),
		Networks: len(m.Content.Networks),
	}
}
