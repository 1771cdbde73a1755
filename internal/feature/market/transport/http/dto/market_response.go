// Package dto defines the JSON shapes of the market endpoints.
package dto

import "market_backend/internal/feature/market/domain/entity"

// MarketResponse is the JSON form of a market card. Unknown values are null.
type MarketResponse struct {
	Symbol            string        `json:"symbol"`
	CoinID            string        `json:"coin_id"`
	Rank              *int          `json:"rank"`
	MarketCapTRY      *float64      `json:"market_cap_try"`
	MarketCapUSD      *float64      `json:"market_cap_usd"`
	Volume24hUSD      *float64      `json:"volume_24h_usd"`
	CirculatingSupply *float64      `json:"circulating_supply"`
	TotalSupply       *float64      `json:"total_supply"`
	MaxSupply         *float64      `json:"max_supply"`
	ChangePct7d       *float64      `json:"change_pct_7d"`
	ChangePct30d      *float64      `json:"change_pct_30d"`
	ChangePct90d      *float64      `json:"change_pct_90d"`
	ATHChangePctUSD   *float64      `json:"ath_change_pct_usd"`
	ATLChangePctUSD   *float64      `json:"atl_change_pct_usd"`
	FearGreed         *float64      `json:"fear_greed"`
	Links             LinksResponse `json:"links"`
}

// LinksResponse holds the normalized external links.
type LinksResponse struct {
	Whitepaper *string `json:"whitepaper"`
	Website    *string `json:"website"`
	Twitter    *string `json:"twitter"`
}

// NewMarketResponse converts a card into its JSON form.
func NewMarketResponse(c *entity.MarketCard) MarketResponse {
	return MarketResponse{
		Symbol:            c.Symbol,
		CoinID:            c.CoinID,
		Rank:              c.Rank.Ptr(),
		MarketCapTRY:      c.MarketCapTRY.Ptr(),
		MarketCapUSD:      c.MarketCapUSD.Ptr(),
		Volume24hUSD:      c.Volume24hUSD.Ptr(),
		CirculatingSupply: c.CirculatingSupply.Ptr(),
		TotalSupply:       c.TotalSupply.Ptr(),
		MaxSupply:         c.MaxSupply.Ptr(),
		ChangePct7d:       c.Change7d.Ptr(),
		ChangePct30d:      c.Change30d.Ptr(),
		ChangePct90d:      c.Change90d.Ptr(),
		ATHChangePctUSD:   c.ATHChangeUSD.Ptr(),
		ATLChangePctUSD:   c.ATLChangeUSD.Ptr(),
		FearGreed:         c.FearGreed.Ptr(),
		Links: LinksResponse{
			Whitepaper: c.Links.Whitepaper.Ptr(),
			Website:    c.Links.Website.Ptr(),
			Twitter:    c.Links.Twitter.Ptr(),
		},
	}
}
