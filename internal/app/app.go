// Package app is the root bubbletea model of the dashboard.
package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dirkx/dirkx/internal/app/popupctl"
	"github.com/dirkx/dirkx/internal/boot"
	"github.com/dirkx/dirkx/internal/config"
	"github.com/dirkx/dirkx/internal/content"
	"github.com/dirkx/dirkx/internal/errmsg"
	"github.com/dirkx/dirkx/internal/keymap"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/palette"
	"github.com/dirkx/dirkx/internal/scroll"
	"github.com/dirkx/dirkx/internal/state"
	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/page"
	"github.com/dirkx/dirkx/internal/ui/paletteview"
	"github.com/dirkx/dirkx/internal/ui/tickerbar"
)

// MarketFetcher fetches a live market snapshot.
type MarketFetcher interface {
	Fetch(ctx context.Context, now time.Time) (market.Snapshot, error)
}

var _ MarketFetcher = (*market.Client)(nil)

// Options configures New. Config and State are required.
type Options struct {
	Config   *config.Config
	State    state.Interface
	Logger   *zap.Logger
	Content  *content.Content // nil loads the embedded content
	Fetcher  MarketFetcher    // nil keeps the mock feed
	Random   telemetry.Random // nil seeds from config
	SkipBoot bool
	Version  string
	Clock    func() time.Time
}

// Model is the root application model containing all state.
type Model struct {
	cfg          *config.Config
	scrollCfg    config.ScrollConfig
	telemetryCfg config.TelemetryConfig
	marketCfg    config.MarketConfig
	log          *zap.Logger
	clock        func() time.Time
	version      string

	StateMgr state.Interface
	fetcher  MarketFetcher
	rng      telemetry.Random
	keys     *keymap.Resolver

	Content     *content.Content
	seq         *scroll.Sequencer
	Page        page.Model
	Palette     *palette.Controller
	paletteView *paletteview.View
	Popups      *popupctl.Manager

	Boot    boot.Model
	Booting bool

	Telemetry  telemetry.State
	lastUptime time.Time
	Market     market.Snapshot
	Ticker     tickerbar.State
	Fetching   bool
	refreshGen int

	SidebarCollapsed bool
	restoreSection   string
	startupNotices   []string

	Notifications      []Notification
	nextNotificationID int64

	Width  int
	Height int
}

// New creates the application model.
func New(opts Options) (Model, error) {
	if opts.Config == nil {
		return Model{}, errors.New("app: config is required")
	}
	if opts.State == nil {
		return Model{}, errors.New("app: state manager is required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	c := opts.Content
	if c == nil {
		var err error
		if c, err = content.Load(); err != nil {
			return Model{}, errors.New(errmsg.Format(errmsg.OpContentLoad, err))
		}
	}

	cfg := opts.Config
	scrollCfg := cfg.GetScrollConfig()
	telemetryCfg := cfg.GetTelemetryConfig()
	rng := opts.Random
	if rng == nil {
		rng = telemetry.NewRandom(telemetryCfg.Seed)
	}

	seq := scroll.New(
		scroll.WithTolerance(scrollCfg.SnapTolerance),
		scroll.WithSettleDelay(scrollCfg.SettleDelay()),
		scroll.WithLogger(log.Named("scroll")),
	)
	keys := keymap.Default()
	now := clock()

	m := Model{
		cfg:          cfg,
		scrollCfg:    scrollCfg,
		telemetryCfg: telemetryCfg,
		marketCfg:    cfg.GetMarketConfig(),
		log:          log,
		clock:        clock,
		version:      opts.Version,
		StateMgr:     opts.State,
		fetcher:      opts.Fetcher,
		rng:          rng,
		keys:         keys,
		Content:      c,
		seq:          seq,
		Page:         page.New(seq, scrollCfg, log.Named("page")),
		Palette:      palette.New(paletteCommands(keys), log.Named("palette")),
		paletteView:  paletteview.New(),
		Popups:       popupctl.New(),
		Boot:         boot.New(len(c.Boot)),
		Booting:      !opts.SkipBoot,
		Telemetry:    telemetry.Default(),
		lastUptime:   now,
		Market:       market.MockSnapshot(now),
	}
	m.Ticker = tickerbar.State{Assets: m.Market.All()}

	prefs, err := opts.State.GetPrefs()
	switch {
	case err != nil:
		log.Warn("prefs load failed, using defaults", zap.Error(err))
		m.startupNotices = append(m.startupNotices, errmsg.Format(errmsg.OpPrefsLoad, err))
	case prefs != nil:
		m.SidebarCollapsed = prefs.SidebarCollapsed
		m.restoreSection = prefs.ActiveSection
	}

	m.Page, _ = m.Page.SetData(m.sectionData())
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		UptimeTickCmd(m.telemetryCfg.UptimeInterval()),
		TelemetryTickCmd(m.telemetryCfg.TickInterval()),
		MarketWalkCmd(m.marketCfg.WalkInterval()),
		TickerTickCmd(),
		WatchStderr(),
	}
	if m.Booting {
		cmds = append(cmds, m.Boot.Init())
	}
	if m.fetcher != nil {
		cmds = append(cmds, emit(MarketRefreshMsg{}))
	}
	for _, n := range m.startupNotices {
		cmds = append(cmds, emit(NotifyMsg{Message: n}))
	}
	return tea.Batch(cmds...)
}

// Close releases everything the model owns: the sequencer is closed and
// pending prefs are flushed.
func (m Model) Close() error {
	m.seq.Close()
	m.StateMgr.SavePrefs(m.prefs())
	return m.StateMgr.Close()
}

func (m Model) prefs() state.Prefs {
	active := m.Page.Active()
	if active == "" {
		active = m.restoreSection
	}
	return state.Prefs{
		ActiveSection:    active,
		SidebarCollapsed: m.SidebarCollapsed,
	}
}

// Live reports whether the market snapshot came from the live feed.
func (m Model) Live() bool {
	return m.Market.Source == market.SourceLive
}
