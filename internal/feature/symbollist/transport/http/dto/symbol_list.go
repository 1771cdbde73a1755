// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem is one supported ticker in the API response.
type SymbolItem struct {
	Code   string `json:"code"`
	CoinID string `json:"coin_id"`
}
