// Package adapters provides SymbolRepository implementations.
package adapters

import (
	"context"
	"strings"

	"market_backend/internal/feature/market/domain/symbol"
	"market_backend/internal/feature/symbollist/domain/entity"
	"market_backend/internal/feature/symbollist/usecase"
)

// AliasSymbolRepository lists the built-in ticker alias table.
type AliasSymbolRepository struct{}

var _ usecase.SymbolRepository = (*AliasSymbolRepository)(nil)

// NewAliasSymbolRepository creates an AliasSymbolRepository.
func NewAliasSymbolRepository() *AliasSymbolRepository {
	return &AliasSymbolRepository{}
}

// ListSupported returns every alias in no particular order.
func (r *AliasSymbolRepository) ListSupported(ctx context.Context) ([]entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	aliases := symbol.Aliases()
	out := make([]entity.Symbol, 0, len(aliases))
	for code, id := range aliases {
		out = append(out, entity.Symbol{Code: strings.ToUpper(code), CoinID: id})
	}
	return out, nil
}
