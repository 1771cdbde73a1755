// Package di provides dependency injection factories for creating application components.
package di

import (
	"market_backend/internal/feature/market/usecase"
	"market_backend/internal/platform/cache"
	"market_backend/internal/platform/externalapi/alternativeme"
	"market_backend/internal/platform/externalapi/coingecko"
	infrahttp "market_backend/internal/platform/http"
)

// NewCoinGeckoMarket creates a fully configured CoinGecko client with HTTP client.
func NewCoinGeckoMarket(store cache.Store) *coingecko.CoinGeckoMarket {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewCoinGeckoMarket(cfg, httpClient, store)
}

// NewFearGreedIndex creates a fully configured Fear & Greed client with HTTP client.
func NewFearGreedIndex(store cache.Store) *alternativeme.FearGreedIndex {
	cfg := alternativeme.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alternativeme.NewFearGreedIndex(cfg, httpClient, store)
}

// NewMarketUsecase wires both upstream clients over a shared cache store.
func NewMarketUsecase(store cache.Store) *usecase.MarketUsecase {
	return usecase.NewMarketUsecase(NewCoinGeckoMarket(store), NewFearGreedIndex(store))
}
