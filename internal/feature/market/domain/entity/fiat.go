package entity

import "strings"

// Fiat is a fiat currency a market card can be requested in.
type Fiat string

const (
	// FiatTRY is the primary fiat and the default for requests.
	FiatTRY Fiat = "try"
	// FiatUSD is the secondary fiat. Derived change figures are computed in USD.
	FiatUSD Fiat = "usd"
)

// ReferenceFiat is the currency used for volume, ATH/ATL and all percentage changes.
const ReferenceFiat = FiatUSD

// ParseFiat parses a fiat code case-insensitively. An empty string yields FiatTRY.
func ParseFiat(s string) (Fiat, bool) {
	switch Fiat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FiatTRY:
		return FiatTRY, true
	case FiatUSD:
		return FiatUSD, true
	default:
		return "", false
	}
}
