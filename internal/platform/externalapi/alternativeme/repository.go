package alternativeme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"market_backend/internal/feature/market/domain/entity"
	"market_backend/internal/feature/market/usecase"
	"market_backend/internal/platform/cache"
	"market_backend/internal/platform/externalapi/alternativeme/dto"
)

var errNoData = errors.New("empty data")

// FearGreedIndex reads the latest Fear & Greed index value.
// It never fails: any upstream problem is logged and reported as unknown.
type FearGreedIndex struct {
	cfg    Config
	client *http.Client
	store  cache.Store
}

var _ usecase.SentimentRepository = (*FearGreedIndex)(nil)

// NewFearGreedIndex creates a client. store may be nil to disable caching.
func NewFearGreedIndex(cfg Config, client *http.Client, store cache.Store) *FearGreedIndex {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &FearGreedIndex{cfg: cfg, client: client, store: store}
}

// GetLatest returns the most recent index value in [0, 100], cached for 5 minutes
// under "sentiment:latest". Only successful readings are cached.
func (f *FearGreedIndex) GetLatest(ctx context.Context) entity.Optional[float64] {
	v, err := cache.GetOrLoad(ctx, f.store, cache.Key("sentiment", "latest"), sentimentTTL, f.fetch)
	if err != nil {
		slog.Warn("fear & greed index unavailable", "error", err)
		return entity.Unknown[float64]()
	}
	return entity.Finite(v)
}

func (f *FearGreedIndex) fetch(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	u := strings.TrimRight(f.cfg.BaseURL, "/") + "/fng/?limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("fng api error: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fng api error: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return 0, fmt.Errorf("fng api error: http %d", res.StatusCode)
	}

	var body dto.FearGreedResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("fng api error: decode response: %w", err)
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("fng api error: %w", errNoData)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(body.Data[0].Value), 64)
	if err != nil {
		return 0, fmt.Errorf("fng api error: parse value %q: %w", body.Data[0].Value, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("fng api error: non-finite value %q", body.Data[0].Value)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("fng api error: value %q out of range", body.Data[0].Value)
	}
	return v, nil
}
