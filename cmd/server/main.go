package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"market_backend/internal/app/config"
	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	markethandler "market_backend/internal/feature/market/transport/handler"
	symbollistadapters "market_backend/internal/feature/symbollist/adapters"
	symbollisthandler "market_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "market_backend/internal/feature/symbollist/usecase"
	infraredis "market_backend/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	startedAt := time.Now()

	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Using in-memory cache and rate limiter.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Cache / rate limiter
	store := di.NewCacheStore(rdb)
	limiter := di.NewRateLimiter(rdb, cfg.RateLimitLimit, cfg.RateLimitTTL)

	// Usecase
	marketUC := di.NewMarketUsecase(store)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewAliasSymbolRepository())

	// Handler
	marketH := markethandler.NewMarketHandler(marketUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	engine, err := router.NewRouter(cfg, marketH, symbolH, limiter, startedAt)
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
