// Package handler provides the HTTP handlers of the market feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/market/domain/entity"
	"market_backend/internal/feature/market/transport/http/dto"
	"market_backend/internal/feature/market/usecase"
	"market_backend/internal/platform/http/apierror"
)

// MarketUsecase defines the market card operations used by the handler.
// Following Go convention, the interface is defined by the consumer (handler).
type MarketUsecase interface {
	GetMarketCard(ctx context.Context, symbol string, fiat entity.Fiat) (*entity.MarketCard, error)
	GetMarketCards(ctx context.Context, symbols []string, fiat entity.Fiat) *entity.BulkResult
}

// MarketHandler handles HTTP requests for market cards.
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMarket returns the market card of one symbol.
//
// Example:
// GET /market/btc?fiat=usd
func (h *MarketHandler) GetMarket(c *gin.Context) {
	sym := strings.TrimSpace(c.Param("symbol"))
	if sym == "" {
		apierror.Abort(c, http.StatusBadRequest, apierror.CodeBadRequest, "symbol is required")
		return
	}
	fiat, ok := entity.ParseFiat(c.Query("fiat"))
	if !ok {
		apierror.Abort(c, http.StatusBadRequest, apierror.CodeBadRequest, invalidFiatMessage(c.Query("fiat")))
		return
	}

	card, err := h.uc.GetMarketCard(c.Request.Context(), sym, fiat)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMarketResponse(card))
}

// GetMarketBulk returns market cards for up to usecase.MaxBulkSymbols symbols.
// Symbols that fail are listed in "failed" instead of failing the request.
//
// Example:
// POST /market/bulk {"symbols":["btc","eth"],"fiat":"try"}
func (h *MarketHandler) GetMarketBulk(c *gin.Context) {
	var req dto.BulkMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Abort(c, http.StatusBadRequest, apierror.CodeBadRequest,
			fmt.Sprintf("symbols must be a list of 1 to %d non-empty symbols", usecase.MaxBulkSymbols))
		return
	}
	fiat, ok := entity.ParseFiat(req.Fiat)
	if !ok {
		apierror.Abort(c, http.StatusBadRequest, apierror.CodeBadRequest, invalidFiatMessage(req.Fiat))
		return
	}

	res := h.uc.GetMarketCards(c.Request.Context(), req.Symbols, fiat)
	c.JSON(http.StatusOK, dto.NewBulkMarketResponse(res))
}

func invalidFiatMessage(v string) string {
	return fmt.Sprintf("unsupported fiat %q: use %q or %q", v, entity.FiatTRY, entity.FiatUSD)
}

// writeUsecaseError maps usecase outcomes to HTTP statuses.
func writeUsecaseError(c *gin.Context, err error) {
	var notFound *usecase.NotFoundError
	var upstream *usecase.UpstreamError
	switch {
	case errors.As(err, &notFound):
		apierror.Abort(c, http.StatusNotFound, apierror.CodeNotFound, notFound.Error())
	case errors.As(err, &upstream):
		apierror.Abort(c, http.StatusBadGateway, apierror.CodeUpstream, upstream.Error())
	default:
		slog.Error("unexpected market error", "path", c.Request.URL.Path, "error", err)
		apierror.Abort(c, http.StatusInternalServerError, apierror.CodeInternalError, "internal server error")
	}
}
