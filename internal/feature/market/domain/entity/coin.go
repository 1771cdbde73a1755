package entity

import (
	"time"

	"market_backend/internal/shared/pricemath"
)

// CoinSnapshot is point-in-time market data for one asset as reported by the
// primary market-data provider.
type CoinSnapshot struct {
	ID     string
	Symbol string
	Name   string

	MarketCapRank     Optional[int]
	MarketCap         map[string]float64 // keyed by lower-case currency code
	TotalVolume       map[string]float64
	CirculatingSupply Optional[float64]
	TotalSupply       Optional[float64]
	MaxSupply         Optional[float64]

	// The provider fills either the direct field or the currency-keyed one
	// depending on query parameters.
	PriceChangePct7d            Optional[float64]
	PriceChangePct30d           Optional[float64]
	PriceChangePct7dInCurrency  map[string]float64
	PriceChangePct30dInCurrency map[string]float64

	ATHChangePct map[string]float64
	ATLChangePct map[string]float64

	Links CoinLinks
}

// CoinLinks holds the raw external links of a coin.
type CoinLinks struct {
	Whitepaper        string
	Homepage          []string
	TwitterScreenName string
}

// PriceSeries is an ordered sequence of price samples over a historical window.
type PriceSeries []pricemath.Point

// PricePoint builds a sample from a unix-millisecond timestamp.
func PricePoint(unixMillis int64, price float64) pricemath.Point {
	return pricemath.Point{Time: time.UnixMilli(unixMillis).UTC(), Price: price}
}
