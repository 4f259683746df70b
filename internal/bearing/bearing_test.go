package bearing

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gogeo/internal/footing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Reference values from Das, Principles of Foundation Engineering,
// Table 4.2 (Vesic Nγ).
func TestBearingFactors(t *testing.T) {
	cases := []struct {
		phi            float64
		nc, nq, ngamma float64
	}{
		{0, 5.14, 1.00, 0.00},
		{10, 8.34, 2.47, 1.22},
		{20, 14.83, 6.40, 5.39},
		{30, 30.14, 18.40, 22.40},
		{40, 75.31, 64.20, 109.41},
	}
	for _, c := range cases {
		fac, err := BearingFactors(c.phi)
		if err != nil {
			t.Fatalf("BearingFactors(%v) returned error: %v", c.phi, err)
		}
		if !almostEqual(fac.Nc, c.nc, 0.05) {
			t.Errorf("Nc(%v°) = %.3f, want %.2f", c.phi, fac.Nc, c.nc)
		}
		if !almostEqual(fac.Nq, c.nq, 0.05) {
			t.Errorf("Nq(%v°) = %.3f, want %.2f", c.phi, fac.Nq, c.nq)
		}
		if !almostEqual(fac.Ngamma, c.ngamma, 0.05) {
			t.Errorf("Nγ(%v°) = %.3f, want %.2f", c.phi, fac.Ngamma, c.ngamma)
		}
	}
}

func TestBearingFactorsRejectsNegativePhi(t *testing.T) {
	if _, err := BearingFactors(-5); err == nil {
		t.Error("BearingFactors(-5) should fail")
	}
}

func TestShapeFactorsSquare(t *testing.T) {
	fac, err := BearingFactors(30)
	if err != nil {
		t.Fatal(err)
	}
	sf := VesicShapeFactors(footing.NewSquare(1.5), fac, 30)

	if !almostEqual(sf.Sc, 1+fac.Nq/fac.Nc, 1e-12) {
		t.Errorf("sc = %v", sf.Sc)
	}
	if !almostEqual(sf.Sq, 1+math.Tan(30*math.Pi/180), 1e-9) {
		t.Errorf("sq = %v, want 1+tan30", sf.Sq)
	}
	if sf.Sgamma != 0.6 {
		t.Errorf("sγ = %v, want 0.6", sf.Sgamma)
	}
}

// A circular footing aliases B and L to its diameter, so its shape
// factors match a square footing of the same width.
func TestShapeFactorsCircularMatchesSquare(t *testing.T) {
	fac, err := BearingFactors(25)
	if err != nil {
		t.Fatal(err)
	}
	circle := VesicShapeFactors(footing.NewCircular(1.2), fac, 25)
	square := VesicShapeFactors(footing.NewSquare(1.2), fac, 25)
	if circle != square {
		t.Errorf("circular %+v != square %+v", circle, square)
	}
}

func TestShapeFactorsStrip(t *testing.T) {
	fac, err := BearingFactors(30)
	if err != nil {
		t.Fatal(err)
	}
	// A very long footing approaches the strip case: all factors → 1.
	sf := VesicShapeFactors(footing.NewRectangular(1, 1000), fac, 30)
	if !almostEqual(sf.Sc, 1, 0.01) || !almostEqual(sf.Sq, 1, 0.01) || !almostEqual(sf.Sgamma, 1, 0.01) {
		t.Errorf("strip shape factors = %+v, want ≈1", sf)
	}
}

func TestCapacityCohesionlessSand(t *testing.T) {
	in := &Input{
		FrictionAngle: 30,
		UnitWeight:    18,
		Depth:         1.0,
		SafetyFactor:  3,
	}
	result, err := in.Capacity(footing.NewSquare(1.5))
	if err != nil {
		t.Fatal(err)
	}

	if result.CohesionTerm != 0 {
		t.Errorf("cohesion term = %v for c=0", result.CohesionTerm)
	}
	if !almostEqual(result.Surcharge, 18, 1e-12) {
		t.Errorf("surcharge = %v, want 18", result.Surcharge)
	}

	wantSum := result.CohesionTerm + result.SurchargeTerm + result.WidthTerm
	if !almostEqual(result.Ultimate, wantSum, 1e-9) {
		t.Errorf("qu = %v, want sum of terms %v", result.Ultimate, wantSum)
	}
	if !almostEqual(result.Allowable, result.Ultimate/3, 1e-9) {
		t.Errorf("qa = %v, want qu/3", result.Allowable)
	}

	// Hand calculation: q·Nq·sq + 0.5·γ·B·Nγ·sγ
	// = 18·18.40·1.577 + 0.5·18·1.5·22.40·0.6 ≈ 522.4 + 181.5 ≈ 704
	if !almostEqual(result.Ultimate, 704, 2) {
		t.Errorf("qu = %.1f kPa, want ≈704", result.Ultimate)
	}
}

func TestCapacityUndrainedClay(t *testing.T) {
	in := &Input{
		Cohesion:     50,
		UnitWeight:   17,
		Depth:        1.0,
		SafetyFactor: 3,
	}
	result, err := in.Capacity(footing.NewCircular(1.2))
	if err != nil {
		t.Fatal(err)
	}

	if result.Factors.Nq != 1 || result.Factors.Ngamma != 0 {
		t.Errorf("φ=0 factors = %+v, want Nq=1 Nγ=0", result.Factors)
	}

	// qu = c·Nc·sc + q·Nq·sq with sc = 1 + Nq/Nc, sq = 1
	// = 50·5.1416·(1 + 1/5.1416) + 17·1·1 ≈ 307.1 + 17 ≈ 324
	if !almostEqual(result.Ultimate, 324, 1) {
		t.Errorf("qu = %.1f kPa, want ≈324", result.Ultimate)
	}
}

func TestCapacityValidation(t *testing.T) {
	in := &Input{FrictionAngle: 30, UnitWeight: 18, SafetyFactor: 3}

	if _, err := in.Capacity(footing.NewSquare(0)); err == nil {
		t.Error("zero-width footing should fail")
	}

	in.UnitWeight = 0
	if _, err := in.Capacity(footing.NewSquare(1.5)); err == nil {
		t.Error("zero unit weight should fail")
	}

	in.UnitWeight = 18
	in.SafetyFactor = 0
	if _, err := in.Capacity(footing.NewSquare(1.5)); err == nil {
		t.Error("zero safety factor should fail")
	}
}
