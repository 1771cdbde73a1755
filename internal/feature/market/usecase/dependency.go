package usecase

import (
	"context"
	"log/slog"

	"market_backend/internal/feature/market/domain/entity"
)

// A market card has two kinds of upstream dependencies:
//   - required: the coin snapshot. Its failure aborts the request (see classifySnapshotError).
//   - optional: sentiment and price history. Their failure is logged and the affected
//     field becomes unknown.

// optional runs fetch and degrades any error to an unknown value.
func optional[T any](ctx context.Context, name, id string, fetch func(context.Context) (T, error)) entity.Optional[T] {
	v, err := fetch(ctx)
	if err != nil {
		slog.Warn("optional dependency failed, continuing without it", "dependency", name, "coin_id", id, "error", err)
		return entity.Unknown[T]()
	}
	return entity.Known(v)
}
