package gtmath

import (
	"fmt"
	"math"
)

// Geotechnical correlations are published with angles in degrees, so the
// helpers here take and return degrees instead of the math package's
// radian convention.

// DegToRad converts an angle from degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SinDeg returns the sine of an angle given in degrees
func SinDeg(deg float64) float64 {
	return math.Sin(DegToRad(deg))
}

// CosDeg returns the cosine of an angle given in degrees
func CosDeg(deg float64) float64 {
	return math.Cos(DegToRad(deg))
}

// TanDeg returns the tangent of an angle given in degrees
func TanDeg(deg float64) float64 {
	return math.Tan(DegToRad(deg))
}

// CotDeg returns the cotangent of an angle given in degrees.
// The cotangent is undefined at multiples of 180° where tan is zero.
func CotDeg(deg float64) (float64, error) {
	t := TanDeg(deg)
	if t == 0 || math.Mod(deg, 180) == 0 {
		return 0, fmt.Errorf("cotangent undefined at %.4f° (multiple of 180°)", deg)
	}
	return 1 / t, nil
}

// AtanDeg returns the arctangent of x in degrees
func AtanDeg(x float64) float64 {
	return RadToDeg(math.Atan(x))
}
