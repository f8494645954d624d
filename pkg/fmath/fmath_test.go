package fmath

import (
	"math"
	"testing"
)

// Tolerances hold in both scalar modes: the fixed-point sine is good to
// about 0.3% and the float path is much tighter.
const tol = 0.005

func TestSinCos(t *testing.T) {
	for i := -360; i <= 360; i += 5 {
		a := float32(i) * Pi / 180.0
		if got, want := Sin(a), float32(math.Sin(float64(a))); Abs(got-want) > tol {
			t.Fatalf("Sin(%f) = %f, want %f", a, got, want)
		}
		if got, want := Cos(a), float32(math.Cos(float64(a))); Abs(got-want) > tol {
			t.Fatalf("Cos(%f) = %f, want %f", a, got, want)
		}
	}
}

func TestSincosAgrees(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := float32(i) * TwoPi / 16.0
		s, c := Sincos(a)
		if s != Sin(a) || c != Cos(a) {
			t.Errorf("Sincos(%f) = (%f, %f), want (%f, %f)", a, s, c, Sin(a), Cos(a))
		}
	}
}

func TestTan(t *testing.T) {
	a := float32(0.5)
	want := float32(math.Tan(float64(a)))
	if got := Tan(a); Abs(got-want) > 0.01 {
		t.Errorf("Tan(0.5) = %f, want %f", got, want)
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(4); Abs(got-2) > tol {
		t.Errorf("Sqrt(4) = %f, want 2", got)
	}
	if got := Sqrt(-1); got != 0 {
		t.Errorf("Sqrt(-1) = %f, want 0", got)
	}
	if got := Sqrt(0); got != 0 {
		t.Errorf("Sqrt(0) = %f, want 0", got)
	}
}

func TestFloor(t *testing.T) {
	if got := Floor(2.9); got != 2 {
		t.Errorf("Floor(2.9) = %f, want 2", got)
	}
	if got := Floor(-0.5); got != -1 {
		t.Errorf("Floor(-0.5) = %f, want -1", got)
	}
}
