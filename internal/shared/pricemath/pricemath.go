// Package pricemath provides guarded arithmetic over price samples.
// Every function reports whether its result is meaningful instead of returning NaN or Inf.
package pricemath

import (
	"math"
	"time"
)

// Point is a single (time, price) sample of a price series.
type Point struct {
	Time  time.Time
	Price float64
}

// PercentageChange returns (last-first)/first*100.
// ok is false when either input is not finite or first <= 0.
func PercentageChange(first, last float64) (pct float64, ok bool) {
	if !isFinite(first) || !isFinite(last) || first <= 0 {
		return 0, false
	}
	pct = (last - first) / first * 100
	if !isFinite(pct) {
		return 0, false
	}
	return pct, true
}

// FirstLastValid scans forward for the first finite, strictly positive price and
// backward for the last one. The two scans are independent and do not assume the
// series is sorted.
func FirstLastValid(series []Point) (first, last float64, ok bool) {
	if len(series) == 0 {
		return 0, 0, false
	}

	foundFirst := false
	for _, p := range series {
		if valid(p.Price) {
			first, foundFirst = p.Price, true
			break
		}
	}

	foundLast := false
	for i := len(series) - 1; i >= 0; i-- {
		if valid(series[i].Price) {
			last, foundLast = series[i].Price, true
			break
		}
	}

	if !foundFirst || !foundLast {
		return 0, 0, false
	}
	return first, last, true
}

func valid(price float64) bool {
	return isFinite(price) && price > 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
