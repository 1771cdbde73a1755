// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol is a ticker the API resolves without a round trip to the provider.
type Symbol struct {
	Code   string // upper-case ticker, e.g. "BTC"
	CoinID string // provider coin id, e.g. "bitcoin"
}
