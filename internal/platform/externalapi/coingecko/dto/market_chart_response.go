package dto

// MarketChartResponse is the body of GET /coins/{id}/market_chart/range.
// Each price is a [unix-millis, price] pair.
type MarketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// ErrorResponse is the error body CoinGecko returns alongside non-2xx statuses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status struct {
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}
