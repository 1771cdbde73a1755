// Package entity defines the domain models for the market feature.
package entity

import "math"

// Optional is a value that may be unknown, e.g. when an upstream field is missing
// or a non-required data source failed.
type Optional[T any] struct {
	value T
	known bool
}

// Known wraps a known value.
func Known[T any](v T) Optional[T] {
	return Optional[T]{value: v, known: true}
}

// Unknown returns an Optional without a value.
func Unknown[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is known.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.known
}

// IsKnown reports whether a value is present.
func (o Optional[T]) IsKnown() bool {
	return o.known
}

// Ptr returns a pointer to a copy of the value, or nil when unknown.
func (o Optional[T]) Ptr() *T {
	if !o.known {
		return nil
	}
	v := o.value
	return &v
}

// Finite returns a known Optional only when f is neither NaN nor infinite.
func Finite(f float64) Optional[float64] {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Unknown[float64]()
	}
	return Known(f)
}

// FinitePtr is Finite for nullable upstream fields.
func FinitePtr(f *float64) Optional[float64] {
	if f == nil {
		return Unknown[float64]()
	}
	return Finite(*f)
}

// FiniteIn looks up a currency-keyed amount. Missing keys are unknown.
func FiniteIn(m map[string]float64, currency string) Optional[float64] {
	v, ok := m[currency]
	if !ok {
		return Unknown[float64]()
	}
	return Finite(v)
}
