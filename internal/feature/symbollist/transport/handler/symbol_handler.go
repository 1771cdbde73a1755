// Package handler provides the HTTP handler of the symbollist feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/symbollist/domain/entity"
	"market_backend/internal/feature/symbollist/transport/http/dto"
	"market_backend/internal/platform/http/apierror"
)

// SymbolUsecase lists the supported symbols.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListSupportedSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests about supported symbols.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the tickers that resolve to a known coin id.
//
// GET /symbols
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSupportedSymbols(c.Request.Context())
	if err != nil {
		slog.Error("failed to list symbols", "error", err)
		apierror.Abort(c, http.StatusInternalServerError, apierror.CodeInternalError, "internal server error")
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, CoinID: s.CoinID})
	}
	c.JSON(http.StatusOK, out)
}
