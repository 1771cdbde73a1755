package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"market_backend/internal/app/config"
	markethandler "market_backend/internal/feature/market/transport/handler"
	symbollisthandler "market_backend/internal/feature/symbollist/transport/handler"
	"market_backend/internal/platform/http/apierror"
	"market_backend/internal/platform/http/handler"
	"market_backend/internal/platform/http/middleware"
)

// NewRouter builds the gin engine with every route and the shared middleware chain.
// Only cfg.TrustedProxies may set the client IP through X-Forwarded-For; the rate
// limiter keys on it.
func NewRouter(cfg config.Config, market *markethandler.MarketHandler, symbol *symbollisthandler.SymbolHandler,
	limiter middleware.Limiter, startedAt time.Time) (*gin.Engine, error) {
	r := gin.New()
	// An empty list ignores X-Forwarded-For entirely
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.AllowOrigins),
	)
	r.NoRoute(func(c *gin.Context) {
		apierror.Abort(c, http.StatusNotFound, apierror.CodeNotFound, "route not found")
	})

	// No rate limit
	health := handler.Health(startedAt)
	for _, path := range []string{"/health", "/healthz"} {
		r.GET(path, health)
		r.HEAD(path, health)
	}
	r.GET("/", handler.Root)
	r.GET("/symbols", symbol.List)

	m := r.Group("/market")
	m.Use(middleware.RateLimit(limiter))
	{
		m.POST("/bulk", market.GetMarketBulk)
		m.GET("/:symbol", market.GetMarket)
	}

	return r, nil
}
