package spt

import "math"

// Standard Penetration Test correction factors and correlations.
// References: Skempton (1986), Liao & Whitman (1986), Peck, Hanson &
// Thornburn (1974) as fitted by Wolff (1989), Terzaghi & Peck (1967).

const (
	// StandardEnergyRatio is the reference hammer energy efficiency
	// the N60 correction normalizes to.
	StandardEnergyRatio = 0.60

	// AtmosphericPressure in kPa, reference stress for the
	// overburden correction.
	AtmosphericPressure = 100.0

	// MaxOverburdenCN caps the Liao & Whitman correction at shallow
	// depth where the formula blows up.
	MaxOverburdenCN = 1.7
)

// N60 corrects a field blow count to 60% hammer energy efficiency.
//
//	N60 = N · (Em · Cb · Cs · Cr) / 0.60
//
// em is the hammer efficiency (e.g. 0.45 for donut, 0.60 for safety
// hammer), cb the borehole diameter factor, cs the sampler factor and
// cr the rod length factor.
func N60(nField, em, cb, cs, cr float64) float64 {
	return nField * em * cb * cs * cr / StandardEnergyRatio
}

// OverburdenCN returns the Liao & Whitman (1986) overburden correction
// factor for an effective vertical stress in kPa, capped at 1.7.
func OverburdenCN(sigmaV float64) float64 {
	cn := math.Sqrt(AtmosphericPressure / sigmaV)
	return math.Min(cn, MaxOverburdenCN)
}

// N160 corrects an energy-corrected blow count to a reference
// overburden stress of one atmosphere: (N1)60 = CN · N60.
func N160(n60, sigmaV float64) float64 {
	return OverburdenCN(sigmaV) * n60
}

// FrictionAngle estimates the internal friction angle of granular soil
// in degrees from the corrected blow count N60.
//
//	φ = 27.1 + 0.3·N60 − 0.00054·N60²
//
// Peck, Hanson & Thornburn correlation as fitted by Wolff (1989). The
// fit turns over for very large N60; that is a property of the
// published curve and is kept as-is. Inputs are not range-checked.
func FrictionAngle(n60 float64) float64 {
	return 27.1 + 0.3*n60 - 0.00054*n60*n60
}

// RelativeDensity estimates the relative density of sand in percent
// from the overburden-corrected blow count, after Skempton (1986):
//
//	Dr = √((N1)60 / 60) · 100
func RelativeDensity(n160 float64) float64 {
	dr := math.Sqrt(n160/60) * 100
	return math.Min(dr, 100)
}

// UndrainedShearStrength estimates cu of clay in kPa from N60 using the
// Terzaghi & Peck consistency correlation (cu ≈ 6.25·N).
func UndrainedShearStrength(n60 float64) float64 {
	return 6.25 * n60
}
