package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCoinNotFound is wrapped by market-data adapters when the provider does not know a coin id.
var ErrCoinNotFound = errors.New("coin not found")

// NotFoundError is returned by GetMarketCard when the resolved coin does not exist upstream.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cryptocurrency '%s' not found", e.Symbol)
}

// UpstreamError is returned by GetMarketCard when the required snapshot could not be fetched.
type UpstreamError struct {
	Symbol  string
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// classifySnapshotError maps a snapshot failure to NotFoundError or UpstreamError.
// Besides ErrCoinNotFound, a message mentioning "404" or "not found" is treated as not found,
// since upstream errors are not always typed.
func classifySnapshotError(symbol string, err error) error {
	if errors.Is(err, ErrCoinNotFound) {
		return &NotFoundError{Symbol: symbol}
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "404") || strings.Contains(lower, "not found") {
		return &NotFoundError{Symbol: symbol}
	}
	if msg == "" {
		msg = "failed to fetch market data"
	}
	return &UpstreamError{Symbol: symbol, Message: msg}
}
