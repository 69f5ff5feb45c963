package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dirkx/dirkx/internal/app"
	"github.com/dirkx/dirkx/internal/config"
	"github.com/dirkx/dirkx/internal/errmsg"
	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/logging"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/state"
	"github.com/dirkx/dirkx/internal/stderr"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func run(ctx context.Context, cmd *cli.Command) (err error) {
	var extra []string
	if path := cmd.String("config"); path != "" {
		extra = append(extra, path)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet("live") {
		cfg.Market.Live = cmd.Bool("live")
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	icons.Init(cfg.Icons)

	logger, err := logging.New(cfg.GetLogConfig())
	if err != nil {
		return fmt.Errorf("prepare logs: %w", err)
	}
	defer func() {
		err = multierr.Append(err, logger.Close())
	}()
	logger.Info("starting", zap.String("version", version), zap.String("node", cfg.NodeName))

	stateMgr, err := state.Open(logger.Named("state"))
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	var fetcher app.MarketFetcher
	if mcfg := cfg.GetMarketConfig(); mcfg.Live {
		fetcher = market.NewClient(
			market.WithAPIURL(mcfg.APIURL),
			market.WithFearGreedURL(mcfg.FearGreedURL),
			market.WithTimeout(mcfg.Timeout()),
			market.WithLogger(logger.Named("market")),
		)
	}

	m, err := app.New(app.Options{
		Config:   cfg,
		State:    stateMgr,
		Logger:   logger.Logger,
		Fetcher:  fetcher,
		SkipBoot: cmd.Bool("skip-boot"),
		Version:  version,
	})
	if err != nil {
		return multierr.Append(err, stateMgr.Close())
	}

	if err := stderr.Start(logger.Named("stderr")); err != nil {
		logger.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		err = multierr.Append(err, fm.Close())
	} else {
		err = multierr.Append(err, m.Close())
	}
	logger.Info("stopped", zap.Error(err))
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := &cli.Command{
		Name:            config.AppName,
		Usage:           "personal cyber dashboard for the terminal",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load additional configuration from `FILE` (TOML)"},
			&cli.BoolFlag{Name: "skip-boot", Usage: "start on the page without playing the boot sequence"},
			&cli.BoolFlag{Name: "live", Usage: "fetch market data from public APIs (overrides market.live)"},
			&cli.StringFlag{Name: "log-level", Usage: "log `LEVEL`: debug, info or none"},
		},
		Action: run,
	}

	err := cmd.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
