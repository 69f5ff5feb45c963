package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrRateLimited is returned when an API answers 429.
var ErrRateLimited = errors.New("rate limited")

const (
	DefaultAPIURL       = "https://api.coingecko.com/api/v3"
	DefaultFearGreedURL = "https://api.alternative.me/fng/"
	DefaultTimeout      = 10 * time.Second

	userAgent = "dirkx-node/1.0"
	perPage   = 50
)

// Client fetches live market data.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	fearGreedURL string
	log          *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIURL overrides the CoinGecko base URL.
func WithAPIURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.apiURL = strings.TrimRight(u, "/")
		}
	}
}

// WithFearGreedURL overrides the fear & greed endpoint.
func WithFearGreedURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.fearGreedURL = u
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a market data client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		apiURL:       DefaultAPIURL,
		fearGreedURL: DefaultFearGreedURL,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch queries the markets, global and fear & greed endpoints
// concurrently. An endpoint that fails is replaced by its mock data; the
// returned error combines every endpoint failure. The snapshot is always
// usable. Macro assets have no public source and stay mocked; Source is
// live only if every endpoint answered.
func (c *Client) Fetch(ctx context.Context, now time.Time) (Snapshot, error) {
	snap := Snapshot{
		Macro:     mockMacro(),
		Source:    SourceLive,
		UpdatedAt: now,
	}

	// A plain group: one endpoint failing must not cancel the others, each
	// falls back on its own.
	var (
		eg                    errgroup.Group
		coins                 []Asset
		ov                    Overview
		fg                    FearGreed
		coinErr, ovErr, fgErr error
	)
	eg.Go(func() error {
		coins, coinErr = c.fetchCoins(ctx)
		return endpointError("markets", coinErr)
	})
	eg.Go(func() error {
		ov, ovErr = c.fetchOverview(ctx)
		return endpointError("global", ovErr)
	})
	eg.Go(func() error {
		fg, fgErr = c.fetchFearGreed(ctx)
		return endpointError("fear_greed", fgErr)
	})
	if err := eg.Wait(); err != nil {
		snap.Source = SourceMock
	}

	if coinErr != nil {
		coins = mockCrypto()
	}
	if ovErr != nil {
		ov = mockOverview()
	}
	if fgErr != nil {
		fg = mockFearGreed(now)
	}
	snap.Crypto, snap.Overview, snap.FearGreed = coins, ov, fg

	errs := multierr.Combine(
		endpointError("markets", coinErr),
		endpointError("global", ovErr),
		endpointError("fear_greed", fgErr),
	)
	for _, err := range multierr.Errors(errs) {
		c.log.Warn("market fetch failed", zap.Error(err))
	}
	return snap.WithMovers(), errs
}

// endpointError tags err with the endpoint it came from. Nil stays nil.
func endpointError(endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", endpoint, err)
}

type coinJSON struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Change24h    float64 `json:"price_change_percentage_24h"`
	MarketCap    float64 `json:"market_cap"`
	TotalVolume  float64 `json:"total_volume"`
	Sparkline    *struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

func (c *Client) fetchCoins(ctx context.Context) ([]Asset, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", "1")
	params.Set("sparkline", "true")
	params.Set("price_change_percentage", "24h")

	var raw []coinJSON
	if err := c.getJSON(ctx, c.apiURL+"/coins/markets?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	out := make([]Asset, 0, len(raw))
	for _, r := range raw {
		a := Asset{
			ID:        r.ID,
			Symbol:    strings.ToUpper(r.Symbol),
			Name:      r.Name,
			Price:     r.CurrentPrice,
			Change24h: r.Change24h,
			Volume:    r.TotalVolume,
			MarketCap: r.MarketCap,
		}
		if r.Sparkline != nil {
			a.Sparkline = r.Sparkline.Price
		}
		out = append(out, a)
	}
	return out, nil
}

type globalJSON struct {
	Data struct {
		TotalMarketCap      map[string]float64 `json:"total_market_cap"`
		TotalVolume         map[string]float64 `json:"total_volume"`
		MarketCapChange24h  float64            `json:"market_cap_change_percentage_24h_usd"`
		MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
	} `json:"data"`
}

func (c *Client) fetchOverview(ctx context.Context) (Overview, error) {
	var raw globalJSON
	if err := c.getJSON(ctx, c.apiURL+"/global", &raw); err != nil {
		return Overview{}, err
	}
	d := raw.Data
	return Overview{
		TotalMarketCap:     d.TotalMarketCap["usd"],
		TotalVolume:        d.TotalVolume["usd"],
		MarketCapChange24h: d.MarketCapChange24h,
		BTCDominance:       d.MarketCapPercentage["btc"],
		ETHDominance:       d.MarketCapPercentage["eth"],
	}, nil
}

type fearGreedJSON struct {
	Data []struct {
		Value          string `json:"value"`
		Classification string `json:"value_classification"`
		Timestamp      string `json:"timestamp"`
	} `json:"data"`
}

func (c *Client) fetchFearGreed(ctx context.Context) (FearGreed, error) {
	var raw fearGreedJSON
	if err := c.getJSON(ctx, c.fearGreedURL+"?limit=1", &raw); err != nil {
		return FearGreed{}, err
	}
	if len(raw.Data) == 0 {
		return FearGreed{}, errors.New("empty response")
	}
	d := raw.Data[0]
	v, err := strconv.Atoi(d.Value)
	if err != nil {
		return FearGreed{}, fmt.Errorf("parse value %q: %w", d.Value, err)
	}
	fg := FearGreed{Value: v, Classification: d.Classification}
	if fg.Classification == "" {
		fg.Classification = Classify(v)
	}
	if ts, err := strconv.ParseInt(d.Timestamp, 10, 64); err == nil {
		fg.Timestamp = time.Unix(ts, 0)
	}
	return fg, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
