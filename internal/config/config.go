package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config, data and state directories.
const AppName = "dirkx"

type Config struct {
	NodeName string `koanf:"node_name"`
	Icons    string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Page scrolling and snapping
	Scroll ScrollConfig `koanf:"scroll"`

	// Simulated node telemetry
	Telemetry TelemetryConfig `koanf:"telemetry"`

	// Market data (mock random walk, optionally seeded from public APIs)
	Market MarketConfig `koanf:"market"`

	Log LogConfig `koanf:"log"`
}

// ScrollConfig holds scroll sequencing configuration.
type ScrollConfig struct {
	SnapTolerance  float64 `koanf:"snap_tolerance"`   // progress units (default: 0.02)
	SettleDelayMs  int     `koanf:"settle_delay_ms"`  // wait after last registration (default: 500)
	IdleDelayMs    int     `koanf:"idle_delay_ms"`    // scroll quiet time before snapping (default: 120)
	SnapMinMs      int     `koanf:"snap_min_ms"`      // shortest snap transition (default: 150)
	SnapMaxMs      int     `koanf:"snap_max_ms"`      // longest snap transition (default: 350)
	PinLengthPct   int     `koanf:"pin_length_pct"`   // pinned distance as % of viewport (default: 130)
	DisableSnap    bool    `koanf:"disable_snap"`     // free scroll everywhere
	WheelStepLines int     `koanf:"wheel_step_lines"` // lines per wheel notch (default: 3)
}

// TelemetryConfig holds telemetry simulation configuration.
type TelemetryConfig struct {
	UptimeIntervalMs int    `koanf:"uptime_interval_ms"` // default: 1000
	TickIntervalMs   int    `koanf:"tick_interval_ms"`   // default: 3000
	Seed             uint64 `koanf:"seed"`               // 0 = time based
}

// MarketConfig holds market data configuration.
type MarketConfig struct {
	Live             bool   `koanf:"live"`               // fetch from public APIs
	APIURL           string `koanf:"api_url"`            // CoinGecko base URL
	FearGreedURL     string `koanf:"fear_greed_url"`     // alternative.me endpoint
	RefreshIntervalS int    `koanf:"refresh_interval_s"` // live refresh (default: 60)
	WalkIntervalMs   int    `koanf:"walk_interval_ms"`   // mock random walk step (default: 3000)
	TimeoutS         int    `koanf:"timeout_s"`          // per-request timeout (default: 10)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info" or "none" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/dirkx/dirkx.log
}

// Load reads the config files in priority order (last wins). Extra paths,
// such as one given on the command line, take precedence over the defaults.
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	configPaths := append(getConfigPaths(), extra...)

	for _, path := range configPaths {
		if path == "" {
			continue
		}
		path = expandPath(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		NodeName: "DIRKX",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.NodeName = strings.TrimSpace(cfg.NodeName)
	if cfg.NodeName == "" {
		cfg.NodeName = "DIRKX"
	}

	cfg.Market.APIURL = strings.TrimSuffix(cfg.Market.APIURL, "/")

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/dirkx/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetScrollConfig returns the scroll configuration with defaults applied.
func (c *Config) GetScrollConfig() ScrollConfig {
	cfg := c.Scroll

	if cfg.SnapTolerance <= 0 || cfg.SnapTolerance > 0.5 {
		cfg.SnapTolerance = 0.02
	}
	if cfg.SettleDelayMs <= 0 {
		cfg.SettleDelayMs = 500
	}
	if cfg.IdleDelayMs <= 0 {
		cfg.IdleDelayMs = 120
	}
	if cfg.SnapMinMs <= 0 {
		cfg.SnapMinMs = 150
	}
	if cfg.SnapMaxMs < cfg.SnapMinMs {
		cfg.SnapMaxMs = max(350, cfg.SnapMinMs)
	}
	if cfg.PinLengthPct <= 0 || cfg.PinLengthPct > 1000 {
		cfg.PinLengthPct = 130
	}
	if cfg.WheelStepLines <= 0 {
		cfg.WheelStepLines = 3
	}

	return cfg
}

// SettleDelay returns the settle window as a duration.
func (s ScrollConfig) SettleDelay() time.Duration {
	return time.Duration(s.SettleDelayMs) * time.Millisecond
}

// IdleDelay returns the scroll idle time as a duration.
func (s ScrollConfig) IdleDelay() time.Duration {
	return time.Duration(s.IdleDelayMs) * time.Millisecond
}

// SnapBounds returns the snap transition duration window.
func (s ScrollConfig) SnapBounds() (time.Duration, time.Duration) {
	return time.Duration(s.SnapMinMs) * time.Millisecond, time.Duration(s.SnapMaxMs) * time.Millisecond
}

// GetTelemetryConfig returns the telemetry configuration with defaults applied.
func (c *Config) GetTelemetryConfig() TelemetryConfig {
	cfg := c.Telemetry

	if cfg.UptimeIntervalMs <= 0 {
		cfg.UptimeIntervalMs = 1000
	}
	if cfg.TickIntervalMs <= 0 {
		cfg.TickIntervalMs = 3000
	}

	return cfg
}

// UptimeInterval returns the uptime tick period.
func (t TelemetryConfig) UptimeInterval() time.Duration {
	return time.Duration(t.UptimeIntervalMs) * time.Millisecond
}

// TickInterval returns the telemetry update period.
func (t TelemetryConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// GetMarketConfig returns the market configuration with defaults applied.
func (c *Config) GetMarketConfig() MarketConfig {
	cfg := c.Market

	if cfg.RefreshIntervalS < 10 {
		cfg.RefreshIntervalS = 60
	}
	if cfg.WalkIntervalMs <= 0 {
		cfg.WalkIntervalMs = 3000
	}
	if cfg.TimeoutS <= 0 || cfg.TimeoutS > 120 {
		cfg.TimeoutS = 10
	}

	return cfg
}

// RefreshInterval returns the live refresh period.
func (m MarketConfig) RefreshInterval() time.Duration {
	return time.Duration(m.RefreshIntervalS) * time.Second
}

// WalkInterval returns the random walk period.
func (m MarketConfig) WalkInterval() time.Duration {
	return time.Duration(m.WalkIntervalMs) * time.Millisecond
}

// Timeout returns the per-request timeout.
func (m MarketConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutS) * time.Second
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "none":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, AppName, AppName+".log")
	}

	return cfg
}
