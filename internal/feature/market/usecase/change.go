package usecase

import (
	"market_backend/internal/feature/market/domain/entity"
	"market_backend/internal/shared/pricemath"
)

// Window is a price-change period reported by the snapshot.
type Window string

const (
	Window7d  Window = "7d"
	Window30d Window = "30d"
)

// changeStrategy looks up a window's percentage change in one place of the snapshot.
type changeStrategy struct {
	name   string
	lookup func(s *entity.CoinSnapshot, w Window) entity.Optional[float64]
}

// changeStrategies are tried in order; the first known value wins.
// The provider fills either the direct field or the currency-keyed one depending on
// query parameters.
var changeStrategies = []changeStrategy{
	{name: "direct", lookup: directChange},
	{name: "in_currency", lookup: inCurrencyChange},
}

// snapshotChange returns the window's percentage change, or unknown if no strategy finds one.
func snapshotChange(s *entity.CoinSnapshot, w Window) entity.Optional[float64] {
	for _, st := range changeStrategies {
		if v := st.lookup(s, w); v.IsKnown() {
			return v
		}
	}
	return entity.Unknown[float64]()
}

func directChange(s *entity.CoinSnapshot, w Window) entity.Optional[float64] {
	switch w {
	case Window7d:
		return s.PriceChangePct7d
	case Window30d:
		return s.PriceChangePct30d
	default:
		return entity.Unknown[float64]()
	}
}

// inCurrencyChange reads the reference-fiat entry. A zero entry is treated as absent.
func inCurrencyChange(s *entity.CoinSnapshot, w Window) entity.Optional[float64] {
	var m map[string]float64
	switch w {
	case Window7d:
		m = s.PriceChangePct7dInCurrency
	case Window30d:
		m = s.PriceChangePct30dInCurrency
	}
	v := entity.FiniteIn(m, string(entity.ReferenceFiat))
	if f, ok := v.Get(); !ok || f == 0 {
		return entity.Unknown[float64]()
	}
	return v
}

// seriesChange derives the percentage change between the first and last valid samples.
func seriesChange(series entity.PriceSeries) entity.Optional[float64] {
	first, last, ok := pricemath.FirstLastValid(series)
	if !ok {
		return entity.Unknown[float64]()
	}
	pct, ok := pricemath.PercentageChange(first, last)
	if !ok {
		return entity.Unknown[float64]()
	}
	return entity.Known(pct)
}
