package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"market_backend/internal/feature/symbollist/domain/entity"
	"market_backend/internal/feature/symbollist/usecase"
)

// mockSymbolRepository is a func-field mock of SymbolRepository.
type mockSymbolRepository struct {
	ListSupportedFunc func(ctx context.Context) ([]entity.Symbol, error)
}

func (m *mockSymbolRepository) ListSupported(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListSupportedFunc != nil {
		return m.ListSupportedFunc(ctx)
	}
	return nil, nil
}

func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

func TestSymbolUsecase_ListSupportedSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		mockListSupported func(ctx context.Context) ([]entity.Symbol, error)
		expectedSymbols   []entity.Symbol
		wantErr           bool
		errMsg            string
	}{
		{
			name: "success: sorted by code",
			mockListSupported: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{Code: "ETH", CoinID: "ethereum"},
					{Code: "ADA", CoinID: "cardano"},
					{Code: "BTC", CoinID: "bitcoin"},
				}, nil
			},
			expectedSymbols: []entity.Symbol{
				{Code: "ADA", CoinID: "cardano"},
				{Code: "BTC", CoinID: "bitcoin"},
				{Code: "ETH", CoinID: "ethereum"},
			},
		},
		{
			name: "success: empty list",
			mockListSupported: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedSymbols: []entity.Symbol{},
		},
		{
			name: "failure: repository returns error",
			mockListSupported: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("symbol source unavailable")
			},
			wantErr: true,
			errMsg:  "symbol source unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListSupportedFunc: tt.mockListSupported})

			symbols, err := uc.ListSupportedSymbols(context.Background())

			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
				assert.Nil(t, symbols)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSymbols, symbols)
		})
	}
}

func TestSymbolUsecase_ListSupportedSymbols_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
		ListSupportedFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return nil, ctx.Err()
		},
	})

	symbols, err := uc.ListSupportedSymbols(ctx)

	assert.Nil(t, symbols)
	assert.ErrorIs(t, err, context.Canceled)
}
