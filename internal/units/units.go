package units

import (
	"fmt"
	"strings"

	"github.com/martinlindhe/unit"

	"github.com/alexiusacademia/gogeo/internal/gtmath"
)

// System identifies the unit system a calculation reports in.
type System int

const (
	SI System = iota
	MKS
	CGS
	BritishImperial
	USImperial
)

// DefaultSystem is the unit system assumed when none is configured.
const DefaultSystem = SI

var systemNames = map[System]string{
	SI:              "SI",
	MKS:             "MKS",
	CGS:             "CGS",
	BritishImperial: "British Imperial",
	USImperial:      "US Imperial",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem resolves a user-supplied unit system name.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "si", "":
		return SI, nil
	case "mks":
		return MKS, nil
	case "cgs":
		return CGS, nil
	case "british", "imperial", "british-imperial":
		return BritishImperial, nil
	case "us", "us-imperial", "uscs":
		return USImperial, nil
	}
	return SI, fmt.Errorf("unknown unit system %q (use SI, MKS, CGS, british or us)", name)
}

// Config holds the unit system and decimal precision for one
// calculation session. Formulas receive it explicitly; there is no
// process-wide registry, so concurrent sessions with different
// settings cannot interfere.
type Config struct {
	System        System
	DecimalPlaces int
}

// DefaultConfig returns a config with SI units and two decimal places.
func DefaultConfig() Config {
	return Config{System: DefaultSystem, DecimalPlaces: gtmath.DefaultPlaces}
}

// SetDecimalPlaces updates the rounding precision. Negative values are
// rejected at the mutation site rather than coerced.
func (c *Config) SetDecimalPlaces(n int) error {
	if n < 0 {
		return fmt.Errorf("decimal places must be non-negative, got %d", n)
	}
	c.DecimalPlaces = n
	return nil
}

// Reset restores the default system and precision.
func (c *Config) Reset() {
	*c = DefaultConfig()
}

// Round rounds v to the configured precision.
func (c Config) Round(v float64) float64 {
	return gtmath.Round(v, c.DecimalPlaces)
}

// Rounded wraps a single-argument formula so every result it returns
// is rounded to the configured precision.
func (c Config) Rounded(fn func(float64) float64) func(float64) float64 {
	return gtmath.RoundTo(c.DecimalPlaces)(fn)
}

// Format renders a bare numeric result at the configured precision.
func (c Config) Format(v float64) string {
	return fmt.Sprintf("%.*f", c.DecimalPlaces, c.Round(v))
}

// Length constructs a length quantity from a value expressed in the
// configured system's working length unit.
func (c Config) Length(value float64) unit.Length {
	switch c.System {
	case CGS:
		return unit.Length(value) * unit.Centimeter
	case BritishImperial, USImperial:
		return unit.Length(value) * unit.Foot
	default:
		return unit.Length(value) * unit.Meter
	}
}

// LengthValue converts a length quantity to the configured system's
// working unit and returns the value with its symbol.
func (c Config) LengthValue(l unit.Length) (float64, string) {
	switch c.System {
	case CGS:
		return l.Centimeters(), "cm"
	case BritishImperial, USImperial:
		return l.Feet(), "ft"
	default:
		return l.Meters(), "m"
	}
}

// FormatLength renders a length quantity in the configured system at
// the configured precision.
func (c Config) FormatLength(l unit.Length) string {
	v, sym := c.LengthValue(l)
	return fmt.Sprintf("%.*f %s", c.DecimalPlaces, c.Round(v), sym)
}

// Meters constructs a length quantity from meters, the unit the
// formula packages take their inputs in.
func Meters(value float64) unit.Length {
	return unit.Length(value) * unit.Meter
}

// Working stress units, derived from the collaborator's pascal. psf is
// the customary imperial unit for soil stresses; the collaborator's
// pressure set has no psf constant, so the factor lives here.
const (
	kilopascal         = unit.Pascal * 1e3
	poundPerSquareFoot = unit.Pascal * 47.88025898033584
)

// Kilopascals constructs a pressure quantity from kPa, the unit the
// formula packages report stresses in.
func Kilopascals(value float64) unit.Pressure {
	return unit.Pressure(value) * kilopascal
}

// PressureValue converts a stress quantity to the configured system's
// working unit and returns the value with its symbol. The metric
// systems all report in kPa, the unit the correlations are published
// in; the imperial systems report in psf.
func (c Config) PressureValue(p unit.Pressure) (float64, string) {
	switch c.System {
	case BritishImperial, USImperial:
		return float64(p / poundPerSquareFoot), "psf"
	default:
		return float64(p / kilopascal), "kPa"
	}
}

// FormatPressure renders a stress quantity in the configured system at
// the configured precision.
func (c Config) FormatPressure(p unit.Pressure) string {
	v, sym := c.PressureValue(p)
	return fmt.Sprintf("%.*f %s", c.DecimalPlaces, c.Round(v), sym)
}

// Degrees constructs an angle quantity from degrees.
func Degrees(value float64) unit.Angle {
	return unit.Angle(value) * unit.Degree
}

// FormatAngle renders an angle quantity in degrees at the configured
// precision.
func (c Config) FormatAngle(a unit.Angle) string {
	return fmt.Sprintf("%.*f°", c.DecimalPlaces, c.Round(a.Degrees()))
}
