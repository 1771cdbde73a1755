package entity

// MarketCard is the unified market view of one asset. It is built once per request.
// Every numeric field is either a finite number or unknown.
type MarketCard struct {
	Symbol string // caller's input, upper-cased
	CoinID string

	Rank              Optional[int]
	MarketCapTRY      Optional[float64]
	MarketCapUSD      Optional[float64]
	Volume24hUSD      Optional[float64]
	CirculatingSupply Optional[float64]
	TotalSupply       Optional[float64]
	MaxSupply         Optional[float64]

	Change7d  Optional[float64]
	Change30d Optional[float64]
	Change90d Optional[float64]

	ATHChangeUSD Optional[float64]
	ATLChangeUSD Optional[float64]

	FearGreed Optional[float64]

	Links Links
}

// Links are the normalized external links of a coin.
type Links struct {
	Whitepaper Optional[string]
	Website    Optional[string]
	Twitter    Optional[string]
}

// BulkResult is the outcome of fetching several market cards at once.
type BulkResult struct {
	Cards  []MarketCard
	Failed []string
}
