package gtmath

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestSinCosTanAtReferenceAngles(t *testing.T) {
	if got := SinDeg(0); got != 0 {
		t.Errorf("SinDeg(0) = %v, want 0", got)
	}
	if got := CosDeg(0); got != 1 {
		t.Errorf("CosDeg(0) = %v, want 1", got)
	}
	if got := TanDeg(45); math.Abs(got-1) > tol {
		t.Errorf("TanDeg(45) = %v, want 1", got)
	}
	if got := SinDeg(30); math.Abs(got-0.5) > tol {
		t.Errorf("SinDeg(30) = %v, want 0.5", got)
	}
	if got := CosDeg(60); math.Abs(got-0.5) > tol {
		t.Errorf("CosDeg(60) = %v, want 0.5", got)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > tol {
		t.Errorf("DegToRad(180) = %v, want π", got)
	}
	if got := RadToDeg(math.Pi / 2); math.Abs(got-90) > tol {
		t.Errorf("RadToDeg(π/2) = %v, want 90", got)
	}
	for _, deg := range []float64{-270, -45, 0, 12.5, 90, 361} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > tol {
			t.Errorf("round trip of %v° = %v", deg, got)
		}
	}
}

func TestCotDegMatchesReciprocalTan(t *testing.T) {
	for _, deg := range []float64{1, 30, 45, 60, 89, 91, 179, 200, -30} {
		got, err := CotDeg(deg)
		if err != nil {
			t.Fatalf("CotDeg(%v) returned error: %v", deg, err)
		}
		want := 1 / TanDeg(deg)
		if math.Abs(got-want) > tol {
			t.Errorf("CotDeg(%v) = %v, want %v", deg, got, want)
		}
	}
}

func TestCotDegUndefinedAtPoles(t *testing.T) {
	for _, deg := range []float64{0, 180, -180, 360, 540} {
		if _, err := CotDeg(deg); err == nil {
			t.Errorf("CotDeg(%v) should be undefined", deg)
		}
	}
}

func TestAtanDeg(t *testing.T) {
	if got := AtanDeg(1); math.Abs(got-45) > tol {
		t.Errorf("AtanDeg(1) = %v, want 45", got)
	}
	if got := AtanDeg(0); got != 0 {
		t.Errorf("AtanDeg(0) = %v, want 0", got)
	}
}
