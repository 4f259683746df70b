package bearing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gogeo/internal/footing"
	"github.com/alexiusacademia/gogeo/internal/gtmath"
)

// Shallow-foundation bearing capacity after the general equation of
// Meyerhof (1963) with Vesic (1973) factors.

// Factors holds the bearing-capacity factors for a friction angle.
type Factors struct {
	Nc     float64
	Nq     float64
	Ngamma float64
}

// NcPhiZero is the Prandtl limit π+2 used for purely cohesive soil,
// where (Nq−1)·cotφ is indeterminate.
const NcPhiZero = math.Pi + 2

// BearingFactors computes Nc, Nq and Nγ for a friction angle in
// degrees.
//
//	Nq = e^(π·tanφ) · tan²(45 + φ/2)   (Reissner 1924)
//	Nc = (Nq − 1) · cotφ               (Prandtl 1921)
//	Nγ = 2(Nq + 1) · tanφ              (Vesic 1973)
func BearingFactors(phi float64) (Factors, error) {
	if phi < 0 {
		return Factors{}, fmt.Errorf("invalid friction angle: φ=%.2f°", phi)
	}
	if phi == 0 {
		return Factors{Nc: NcPhiZero, Nq: 1, Ngamma: 0}, nil
	}

	tanPhi := gtmath.TanDeg(phi)
	nq := math.Exp(math.Pi*tanPhi) * math.Pow(gtmath.TanDeg(45+phi/2), 2)

	cotPhi, err := gtmath.CotDeg(phi)
	if err != nil {
		return Factors{}, err
	}

	return Factors{
		Nc:     (nq - 1) * cotPhi,
		Nq:     nq,
		Ngamma: 2 * (nq + 1) * tanPhi,
	}, nil
}

// ShapeFactors holds the De Beer (1970) shape corrections for the
// three capacity terms.
type ShapeFactors struct {
	Sc     float64
	Sq     float64
	Sgamma float64
}

// VesicShapeFactors computes shape factors from the footing plan
// geometry. A circular footing has B/L = 1 through its aliased
// dimensions, which reproduces the square-footing factors.
//
//	sc = 1 + (B/L)(Nq/Nc)
//	sq = 1 + (B/L)·tanφ
//	sγ = 1 − 0.4(B/L) ≥ 0.6
func VesicShapeFactors(f footing.Footing, fac Factors, phi float64) ShapeFactors {
	ratio := f.Width() / f.Length()
	return ShapeFactors{
		Sc:     1 + ratio*fac.Nq/fac.Nc,
		Sq:     1 + ratio*gtmath.TanDeg(phi),
		Sgamma: math.Max(1-0.4*ratio, 0.6),
	}
}

// Input holds the soil and foundation parameters for a capacity
// calculation. Stresses in kPa, unit weight in kN/m³, dimensions in m.
type Input struct {
	Cohesion      float64 // c - soil cohesion (kPa)
	FrictionAngle float64 // φ - internal friction angle (degrees)
	UnitWeight    float64 // γ - soil unit weight (kN/m³)
	Depth         float64 // Df - foundation depth (m)
	SafetyFactor  float64 // FS - factor of safety on qu
}

// Result holds the results of a bearing capacity calculation.
type Result struct {
	Factors Factors
	Shape   ShapeFactors

	Surcharge float64 // q = γ·Df (kPa)

	// Capacity term contributions (kPa)
	CohesionTerm  float64 // c·Nc·sc
	SurchargeTerm float64 // q·Nq·sq
	WidthTerm     float64 // 0.5·γ·B·Nγ·sγ

	Ultimate  float64 // qu (kPa)
	Allowable float64 // qa = qu/FS (kPa)

	Message string
}

// Capacity computes the ultimate and allowable bearing pressure under
// the given footing.
//
//	qu = c·Nc·sc + q·Nq·sq + 0.5·γ·B·Nγ·sγ
func (in *Input) Capacity(f footing.Footing) (*Result, error) {
	if f.Width() <= 0 || f.Length() <= 0 {
		return nil, fmt.Errorf("invalid footing dimensions: B=%.2f, L=%.2f", f.Width(), f.Length())
	}
	if in.UnitWeight <= 0 {
		return nil, fmt.Errorf("invalid unit weight: γ=%.2f", in.UnitWeight)
	}
	if in.SafetyFactor <= 0 {
		return nil, fmt.Errorf("invalid safety factor: FS=%.2f", in.SafetyFactor)
	}

	fac, err := BearingFactors(in.FrictionAngle)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Factors:   fac,
		Shape:     VesicShapeFactors(f, fac, in.FrictionAngle),
		Surcharge: in.UnitWeight * in.Depth,
	}

	result.CohesionTerm = in.Cohesion * fac.Nc * result.Shape.Sc
	result.SurchargeTerm = result.Surcharge * fac.Nq * result.Shape.Sq
	result.WidthTerm = 0.5 * in.UnitWeight * f.Width() * fac.Ngamma * result.Shape.Sgamma

	result.Ultimate = result.CohesionTerm + result.SurchargeTerm + result.WidthTerm
	result.Allowable = result.Ultimate / in.SafetyFactor

	switch {
	case in.FrictionAngle == 0:
		result.Message = "Undrained analysis (φ=0), capacity governed by cohesion"
	case in.Cohesion == 0:
		result.Message = "Drained analysis on cohesionless soil"
	default:
		result.Message = "Drained analysis with cohesion and friction"
	}

	return result, nil
}
