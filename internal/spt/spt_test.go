package spt

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestN60(t *testing.T) {
	// Safety hammer at the reference efficiency leaves N unchanged.
	if got := N60(18, 0.60, 1, 1, 1); !almostEqual(got, 18, 1e-12) {
		t.Errorf("N60 at reference efficiency = %v, want 18", got)
	}

	// Donut hammer at 45% efficiency: 18·0.45/0.60 = 13.5
	if got := N60(18, 0.45, 1, 1, 1); !almostEqual(got, 13.5, 1e-12) {
		t.Errorf("N60 donut hammer = %v, want 13.5", got)
	}

	// Correction factors multiply through.
	if got := N60(20, 0.60, 1.05, 1.2, 0.95); !almostEqual(got, 20*1.05*1.2*0.95, 1e-12) {
		t.Errorf("N60 with factors = %v", got)
	}
}

func TestOverburdenCN(t *testing.T) {
	// At one atmosphere of effective stress the correction is unity.
	if got := OverburdenCN(100); !almostEqual(got, 1, 1e-12) {
		t.Errorf("CN(100 kPa) = %v, want 1", got)
	}

	// CN = √(100/400) = 0.5
	if got := OverburdenCN(400); !almostEqual(got, 0.5, 1e-12) {
		t.Errorf("CN(400 kPa) = %v, want 0.5", got)
	}

	// Shallow depth is capped at 1.7.
	if got := OverburdenCN(10); got != MaxOverburdenCN {
		t.Errorf("CN(10 kPa) = %v, want cap %v", got, MaxOverburdenCN)
	}
}

func TestN160(t *testing.T) {
	if got := N160(20, 400); !almostEqual(got, 10, 1e-12) {
		t.Errorf("(N1)60 = %v, want 10", got)
	}
}

func TestFrictionAngle(t *testing.T) {
	if got := FrictionAngle(0); got != 27.1 {
		t.Errorf("FrictionAngle(0) = %v, want 27.1", got)
	}
	// 27.1 + 3 − 0.054 = 30.046
	if got := FrictionAngle(10); !almostEqual(got, 30.046, 1e-12) {
		t.Errorf("FrictionAngle(10) = %v, want 30.046", got)
	}
	if got := FrictionAngle(50); !almostEqual(got, 27.1+15-1.35, 1e-12) {
		t.Errorf("FrictionAngle(50) = %v, want 40.75", got)
	}
}

// The published fit turns over at very large blow counts; that shape
// is part of the contract.
func TestFrictionAngleTurnsOver(t *testing.T) {
	peak := 0.3 / (2 * 0.00054) // vertex of the parabola
	if FrictionAngle(peak+100) >= FrictionAngle(peak) {
		t.Error("fit should decrease beyond its vertex")
	}
	if FrictionAngle(40) <= FrictionAngle(10) {
		t.Error("fit should increase over the working range")
	}
}

func TestRelativeDensity(t *testing.T) {
	if got := RelativeDensity(60); !almostEqual(got, 100, 1e-12) {
		t.Errorf("Dr((N1)60=60) = %v, want 100", got)
	}
	if got := RelativeDensity(15); !almostEqual(got, 50, 1e-12) {
		t.Errorf("Dr((N1)60=15) = %v, want 50", got)
	}
	// Blow counts past the correlation bound are capped at 100%.
	if got := RelativeDensity(90); got != 100 {
		t.Errorf("Dr((N1)60=90) = %v, want 100", got)
	}
}

func TestUndrainedShearStrength(t *testing.T) {
	if got := UndrainedShearStrength(10); !almostEqual(got, 62.5, 1e-12) {
		t.Errorf("cu(N60=10) = %v, want 62.5", got)
	}
}
