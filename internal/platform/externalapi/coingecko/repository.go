package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"market_backend/internal/feature/market/domain/entity"
	"market_backend/internal/feature/market/usecase"
	"market_backend/internal/platform/cache"
	"market_backend/internal/platform/externalapi/coingecko/dto"
)

// maxErrorBody caps how much of a non-2xx body is read into the error message.
const maxErrorBody = 4 << 10

// CoinGeckoMarket fetches coin snapshots and price history from CoinGecko.
// Responses are cached as raw upstream payloads.
type CoinGeckoMarket struct {
	cfg    Config
	client *http.Client
	store  cache.Store
	now    func() time.Time
}

var _ usecase.CoinRepository = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket creates a client. store may be nil to disable caching.
func NewCoinGeckoMarket(cfg Config, client *http.Client, store cache.Store) *CoinGeckoMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &CoinGeckoMarket{cfg: cfg, client: client, store: store, now: time.Now}
}

// GetSnapshot returns the current market snapshot of a coin, cached for 60 seconds
// under "snapshot:{id}".
func (m *CoinGeckoMarket) GetSnapshot(ctx context.Context, id string) (*entity.CoinSnapshot, error) {
	body, err := cache.GetOrLoad(ctx, m.store, cache.Key("snapshot", id), snapshotTTL,
		func(ctx context.Context) (dto.CoinResponse, error) {
			q := url.Values{}
			q.Set("localization", "false")
			q.Set("tickers", "false")
			q.Set("market_data", "true")
			q.Set("community_data", "true")
			q.Set("developer_data", "false")
			q.Set("sparkline", "false")

			var out dto.CoinResponse
			if err := m.getJSON(ctx, "/coins/"+url.PathEscape(id), q, &out); err != nil {
				return dto.CoinResponse{}, err
			}
			return out, nil
		})
	if err != nil {
		return nil, err
	}
	return toSnapshot(body), nil
}

// GetPriceRange90d returns the price series of the last 90 days in the given currency,
// cached for 5 minutes under "range90d:{id}:{currency}". The window is computed when the
// upstream call is made.
func (m *CoinGeckoMarket) GetPriceRange90d(ctx context.Context, id string, currency entity.Fiat) (entity.PriceSeries, error) {
	body, err := cache.GetOrLoad(ctx, m.store, cache.Key("range90d", id, string(currency)), rangeTTL,
		func(ctx context.Context) (dto.MarketChartResponse, error) {
			to := m.now()
			from := to.Add(-rangeWindow)

			q := url.Values{}
			q.Set("vs_currency", string(currency))
			q.Set("from", strconv.FormatInt(from.Unix(), 10))
			q.Set("to", strconv.FormatInt(to.Unix(), 10))

			var out dto.MarketChartResponse
			if err := m.getJSON(ctx, "/coins/"+url.PathEscape(id)+"/market_chart/range", q, &out); err != nil {
				return dto.MarketChartResponse{}, err
			}
			return out, nil
		})
	if err != nil {
		return nil, err
	}

	series := make(entity.PriceSeries, 0, len(body.Prices))
	for _, p := range body.Prices {
		series = append(series, entity.PricePoint(int64(p[0]), p[1]))
	}
	return series, nil
}

// getJSON performs a GET request and decodes a 2xx JSON body into out.
// Every failure is returned as a "coingecko api error"; a 404 also wraps usecase.ErrCoinNotFound.
func (m *CoinGeckoMarket) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(m.cfg.BaseURL, "/"), path, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("coingecko api error: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if m.cfg.APIKey != "" {
		req.Header.Set("x-cg-pro-api-key", m.cfg.APIKey)
	}

	slog.Debug("coingecko request", "path", path)
	res, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko api error: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("coingecko api error: %w: http 404", usecase.ErrCoinNotFound)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("coingecko api error: http %d%s", res.StatusCode, errorDetail(res.Body))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko api error: decode response: %w", err)
	}
	return nil
}

// errorDetail extracts a human-readable message from an error body, prefixed with ": ".
func errorDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(b, &body); err == nil {
		if body.Status.ErrorMessage != "" {
			return ": " + body.Status.ErrorMessage
		}
		if body.Error != "" {
			return ": " + body.Error
		}
	}
	return ""
}

// toSnapshot converts the wire shape into the domain entity.
func toSnapshot(c dto.CoinResponse) *entity.CoinSnapshot {
	md := c.MarketData

	rank := entity.Unknown[int]()
	if c.MarketCapRank != nil {
		rank = entity.Known(*c.MarketCapRank)
	}

	return &entity.CoinSnapshot{
		ID:                          c.ID,
		Symbol:                      c.Symbol,
		Name:                        c.Name,
		MarketCapRank:               rank,
		MarketCap:                   md.MarketCap,
		TotalVolume:                 md.TotalVolume,
		CirculatingSupply:           entity.FinitePtr(md.CirculatingSupply),
		TotalSupply:                 entity.FinitePtr(md.TotalSupply),
		MaxSupply:                   entity.FinitePtr(md.MaxSupply),
		PriceChangePct7d:            entity.FinitePtr(md.PriceChangePercentage7d),
		PriceChangePct30d:           entity.FinitePtr(md.PriceChangePercentage30d),
		PriceChangePct7dInCurrency:  md.PriceChangePercentage7dInCurrency,
		PriceChangePct30dInCurrency: md.PriceChangePercentage30dInCurrency,
		ATHChangePct:                md.ATHChangePercentage,
		ATLChangePct:                md.ATLChangePercentage,
		Links: entity.CoinLinks{
			Whitepaper:        c.Links.Whitepaper,
			Homepage:          c.Links.Homepage,
			TwitterScreenName: c.Links.TwitterScreenName,
		},
	}
}
