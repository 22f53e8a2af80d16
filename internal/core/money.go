// Package core holds the domain model and the pure aggregation engine.
//
// Monetary values are fixed-point cents. Floats only appear at the JSON
// boundary, where they are rounded half-up to two decimal places.
package core

import (
	"math"
	"strconv"
)

// MoneyFromFloat converts a decimal amount to cents with half-up
// rounding on the third decimal place.
//
// Examples:
//
//	MoneyFromFloat(12.34)  -> {1234}
//	MoneyFromFloat(12.345) -> {1235}
//	MoneyFromFloat(-0.005) -> {-1}
func MoneyFromFloat(v float64) Money {
	return Money{Cents: int64(math.Round(v * 100))}
}

// Float returns the decimal value for display and JSON encoding.
// Use cents for arithmetic to avoid floating-point drift.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// MarshalJSON encodes the amount as a plain two-decimal number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float(), 'f', 2, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return ErrInvalidAmount
	}
	*m = MoneyFromFloat(v)
	return nil
}
