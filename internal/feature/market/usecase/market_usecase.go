// Package usecase implements the market card aggregation.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"market_backend/internal/feature/market/domain/entity"
	"market_backend/internal/feature/market/domain/symbol"
)

const (
	// MaxBulkSymbols is the largest number of symbols accepted by GetMarketCards.
	MaxBulkSymbols = 50
	// bulkConcurrency bounds concurrent card builds in GetMarketCards.
	bulkConcurrency = 4
)

// CoinRepository fetches market data from the primary provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CoinRepository interface {
	// GetSnapshot returns the current market snapshot of a coin id.
	GetSnapshot(ctx context.Context, id string) (*entity.CoinSnapshot, error)
	// GetPriceRange90d returns the last 90 days of prices in currency.
	GetPriceRange90d(ctx context.Context, id string, currency entity.Fiat) (entity.PriceSeries, error)
}

// SentimentRepository returns the latest market sentiment index.
// Implementations never fail; an unavailable index is reported as unknown.
type SentimentRepository interface {
	GetLatest(ctx context.Context) entity.Optional[float64]
}

// MarketUsecase builds market cards from the primary and sentiment providers.
type MarketUsecase struct {
	coins     CoinRepository
	sentiment SentimentRepository
}

// NewMarketUsecase creates a MarketUsecase.
func NewMarketUsecase(coins CoinRepository, sentiment SentimentRepository) *MarketUsecase {
	return &MarketUsecase{coins: coins, sentiment: sentiment}
}

// GetMarketCard resolves symbol and assembles its market card.
//
// The snapshot is the only required dependency: its failure is returned as *NotFoundError
// or *UpstreamError. Sentiment and 90-day history failures leave their fields unknown.
// fiat is the caller's display currency; both market caps are always returned and derived
// changes are computed in entity.ReferenceFiat.
func (u *MarketUsecase) GetMarketCard(ctx context.Context, sym string, fiat entity.Fiat) (*entity.MarketCard, error) {
	id := symbol.Resolve(sym)
	slog.Debug("processing market card request", "symbol", sym, "coin_id", id, "fiat", fiat)

	// The 90-day range is optional; start it now and collect it after the required path.
	rangeCh := make(chan entity.Optional[entity.PriceSeries], 1)
	go func() {
		rangeCh <- optional(ctx, "range90d", id, func(ctx context.Context) (entity.PriceSeries, error) {
			return u.coins.GetPriceRange90d(ctx, id, entity.ReferenceFiat)
		})
	}()

	var (
		snapshot  *entity.CoinSnapshot
		fearGreed entity.Optional[float64]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.coins.GetSnapshot(gctx, id)
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	})
	g.Go(func() error {
		fearGreed = u.sentiment.GetLatest(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to fetch coin snapshot", "symbol", sym, "coin_id", id, "error", err)
		return nil, classifySnapshotError(sym, err)
	}

	change90d := entity.Unknown[float64]()
	if series, ok := (<-rangeCh).Get(); ok {
		change90d = seriesChange(series)
	}

	card := buildCard(sym, id, snapshot, fearGreed, change90d)
	slog.Debug("processed market card", "symbol", sym, "coin_id", card.CoinID)
	return card, nil
}

// GetMarketCards builds cards for several symbols with bounded concurrency.
// Symbols are de-duplicated case-insensitively and keep their first-seen order.
// Symbols whose card cannot be built are listed in Failed; the call itself never fails.
// Blank symbols are never fetched and are listed in Failed as given.
func (u *MarketUsecase) GetMarketCards(ctx context.Context, symbols []string, fiat entity.Fiat) *entity.BulkResult {
	entries := dedupe(symbols)

	cards := make([]*entity.MarketCard, len(entries))
	g := new(errgroup.Group)
	g.SetLimit(bulkConcurrency)
	for i, e := range entries {
		if e.blank {
			continue
		}
		g.Go(func() error {
			card, err := u.GetMarketCard(ctx, e.symbol, fiat)
			if err != nil {
				slog.Warn("bulk market card failed", "symbol", e.symbol, "error", err)
				return nil
			}
			cards[i] = card
			return nil
		})
	}
	_ = g.Wait()

	out := &entity.BulkResult{Cards: []entity.MarketCard{}, Failed: []string{}}
	for i, c := range cards {
		if c == nil {
			out.Failed = append(out.Failed, entries[i].symbol)
			continue
		}
		out.Cards = append(out.Cards, *c)
	}
	return out
}

type bulkEntry struct {
	symbol string
	blank  bool
}

// dedupe trims symbols and drops case-insensitive repeats.
// Blank symbols keep their original text so they can be reported back.
func dedupe(symbols []string) []bulkEntry {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]bulkEntry, 0, len(symbols))
	for _, raw := range symbols {
		s := strings.TrimSpace(raw)
		key := strings.ToLower(s)
		if s == "" {
			// blank input is keyed by its raw form; "" never collides with a real symbol
			key = "\x00" + raw
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if s == "" {
			out = append(out, bulkEntry{symbol: raw, blank: true})
			continue
		}
		out = append(out, bulkEntry{symbol: s})
	}
	return out
}

// buildCard merges the snapshot and derived fields into a MarketCard.
func buildCard(sym, id string, s *entity.CoinSnapshot, fearGreed, change90d entity.Optional[float64]) *entity.MarketCard {
	coinID := s.ID
	if coinID == "" {
		coinID = id
	}
	usd := string(entity.FiatUSD)

	return &entity.MarketCard{
		Symbol:            strings.ToUpper(sym),
		CoinID:            coinID,
		Rank:              s.MarketCapRank,
		MarketCapTRY:      entity.FiniteIn(s.MarketCap, string(entity.FiatTRY)),
		MarketCapUSD:      entity.FiniteIn(s.MarketCap, usd),
		Volume24hUSD:      entity.FiniteIn(s.TotalVolume, usd),
		CirculatingSupply: s.CirculatingSupply,
		TotalSupply:       s.TotalSupply,
		MaxSupply:         s.MaxSupply,
		Change7d:          snapshotChange(s, Window7d),
		Change30d:         snapshotChange(s, Window30d),
		Change90d:         change90d,
		ATHChangeUSD:      entity.FiniteIn(s.ATHChangePct, usd),
		ATLChangeUSD:      entity.FiniteIn(s.ATLChangePct, usd),
		FearGreed:         finiteOptional(fearGreed),
		Links:             normalizeLinks(s.Links),
	}
}

func finiteOptional(o entity.Optional[float64]) entity.Optional[float64] {
	if v, ok := o.Get(); ok {
		return entity.Finite(v)
	}
	return o
}
