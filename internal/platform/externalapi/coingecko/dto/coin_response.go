// Package dto holds the wire shapes of the CoinGecko API.
package dto

// CoinResponse is the subset of GET /coins/{id} used by the service.
// Nullable upstream fields are pointers.
type CoinResponse struct {
	ID            string     `json:"id"`
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name"`
	MarketCapRank *int       `json:"market_cap_rank"`
	MarketData    MarketData `json:"market_data"`
	Links         Links      `json:"links"`
}

// MarketData is the market_data object of a coin.
type MarketData struct {
	MarketCap   map[string]float64 `json:"market_cap"`
	TotalVolume map[string]float64 `json:"total_volume"`

	CirculatingSupply *float64 `json:"circulating_supply"`
	TotalSupply       *float64 `json:"total_supply"`
	MaxSupply         *float64 `json:"max_supply"`

	PriceChangePercentage7d            *float64           `json:"price_change_percentage_7d"`
	PriceChangePercentage30d           *float64           `json:"price_change_percentage_30d"`
	PriceChangePercentage7dInCurrency  map[string]float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage30dInCurrency map[string]float64 `json:"price_change_percentage_30d_in_currency"`

	ATHChangePercentage map[string]float64 `json:"ath_change_percentage"`
	ATLChangePercentage map[string]float64 `json:"atl_change_percentage"`
}

// Links is the links object of a coin.
type Links struct {
	Whitepaper        string   `json:"whitepaper"`
	Homepage          []string `json:"homepage"`
	TwitterScreenName string   `json:"twitter_screen_name"`
}
