package dto

import "market_backend/internal/feature/market/domain/entity"

// BulkMarketRequest is the body of POST /market/bulk.
type BulkMarketRequest struct {
	Symbols []string `json:"symbols" binding:"required,min=1,max=50,dive,required,max=32"`
	Fiat    string   `json:"fiat"`
}

// BulkMarketResponse is the result of POST /market/bulk.
type BulkMarketResponse struct {
	Data   []MarketResponse `json:"data"`
	Count  int              `json:"count"`
	Failed []string         `json:"failed"`
}

// NewBulkMarketResponse converts a bulk result into its JSON form.
func NewBulkMarketResponse(r *entity.BulkResult) BulkMarketResponse {
	data := make([]MarketResponse, 0, len(r.Cards))
	for i := range r.Cards {
		data = append(data, NewMarketResponse(&r.Cards[i]))
	}
	failed := r.Failed
	if failed == nil {
		failed = []string{}
	}
	return BulkMarketResponse{Data: data, Count: len(data), Failed: failed}
}
