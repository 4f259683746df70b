package gtmath

import (
	"fmt"
	"math"
)

// DefaultPlaces is the decimal precision used when no explicit
// precision is configured.
const DefaultPlaces = 2

// Round rounds v to the given number of decimal places, half away
// from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// RoundTo builds a wrapper that rounds the result of a unary
// float-returning function to a fixed number of decimal places.
//
//	phi := gtmath.RoundTo(3)(spt.FrictionAngle)
//	phi(10) // 30.046
func RoundTo(places int) func(func(float64) float64) func(float64) float64 {
	return func(fn func(float64) float64) func(float64) float64 {
		return func(x float64) float64 {
			return Round(fn(x), places)
		}
	}
}

// Rounded wraps fn so its result is rounded to DefaultPlaces.
func Rounded(fn func(float64) float64) func(float64) float64 {
	return RoundTo(DefaultPlaces)(fn)
}

// NewRounder returns a function rounding to the given precision, or an
// error when the precision is negative.
func NewRounder(places int) (func(float64) float64, error) {
	if places < 0 {
		return nil, fmt.Errorf("decimal places must be non-negative, got %d", places)
	}
	return func(v float64) float64 { return Round(v, places) }, nil
}
