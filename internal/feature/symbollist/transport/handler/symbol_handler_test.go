package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/feature/symbollist/domain/entity"
	"market_backend/internal/platform/http/apierror"
)

// mockSymbolUsecase is a func-field mock of SymbolUsecase.
type mockSymbolUsecase struct {
	ListSupportedSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListSupportedSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListSupportedSymbolsFunc != nil {
		return m.ListSupportedSymbolsFunc(ctx)
	}
	return nil, nil
}

func TestNewSymbolHandler(t *testing.T) {
	t.Parallel()

	mockUC := &mockSymbolUsecase{}
	handler := NewSymbolHandler(mockUC)

	assert.NotNil(t, handler, "handler should not be nil")
	assert.NotNil(t, handler.uc, "usecase should not be nil")
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockList       func(ctx context.Context) ([]entity.Symbol, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns list of symbols",
			mockList: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{Code: "BTC", CoinID: "bitcoin"},
					{Code: "ETH", CoinID: "ethereum"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"BTC","coin_id":"bitcoin"},{"code":"ETH","coin_id":"ethereum"}]`,
		},
		{
			name: "success: nil list is an empty array",
			mockList: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/symbols", NewSymbolHandler(&mockSymbolUsecase{ListSupportedSymbolsFunc: tt.mockList}).List)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/symbols", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSymbolHandler_List_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/symbols", NewSymbolHandler(&mockSymbolUsecase{
		ListSupportedSymbolsFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return nil, errors.New("boom")
		},
	}).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/symbols", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierror.CodeInternalError, body.Error)
	assert.NotContains(t, w.Body.String(), "boom")
}
