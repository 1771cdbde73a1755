// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"cmp"
	"context"
	"slices"

	"market_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts where the supported symbols come from.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListSupported(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolUsecase はシンボル一覧に関するビジネスロジックを提供します。
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSupportedSymbols は対応しているシンボルをコード順に並べて返します。
func (u *SymbolUsecase) ListSupportedSymbols(ctx context.Context) ([]entity.Symbol, error) {
	symbols, err := u.repo.ListSupported(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(symbols, func(a, b entity.Symbol) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return symbols, nil
}
