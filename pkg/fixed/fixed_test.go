package fixed

import (
	"math"
	"testing"
)

func TestConversionRoundtrip(t *testing.T) {
	cases := []int{0, 1, -1, 42, -42, 32000, -32000}
	for _, n := range cases {
		if got := FromInt(n).Int(); got != n {
			t.Errorf("FromInt(%d).Int() = %d", n, got)
		}
	}

	f := FromFloat(1.5)
	if f != One+Half {
		t.Errorf("FromFloat(1.5) = %d, want %d", f, One+Half)
	}
	if got := f.Float(); got != 1.5 {
		t.Errorf("Float() = %f, want 1.5", got)
	}
}

func TestMulDiv(t *testing.T) {
	a := FromFloat(3.0)
	b := FromFloat(0.5)
	if got := a.Mul(b).Float(); got != 1.5 {
		t.Errorf("3.0 * 0.5 = %f, want 1.5", got)
	}
	if got := a.Div(b).Float(); got != 6.0 {
		t.Errorf("3.0 / 0.5 = %f, want 6.0", got)
	}
	if got := a.Div(0); got != 0 {
		t.Errorf("division by zero should yield 0, got %d", got)
	}

	// Negative operands through the 64-bit intermediate.
	if got := FromFloat(-2.0).Mul(FromFloat(1.25)).Float(); got != -2.5 {
		t.Errorf("-2.0 * 1.25 = %f, want -2.5", got)
	}
}

func TestFloor(t *testing.T) {
	if got := FromFloat(2.75).Floor(); got != FromInt(2) {
		t.Errorf("floor(2.75) = %f, want 2", got.Float())
	}
	// Floors toward negative infinity, matching a bitwise fraction clear.
	if got := FromFloat(-0.25).Floor(); got != FromInt(-1) {
		t.Errorf("floor(-0.25) = %f, want -1", got.Float())
	}
}

func TestAbs(t *testing.T) {
	if got := FromFloat(-3.5).Abs(); got != FromFloat(3.5) {
		t.Errorf("abs(-3.5) = %f", got.Float())
	}
	if got := Fixed(math.MinInt32).Abs(); got != math.MaxInt32 {
		t.Errorf("abs(MinInt32) should clamp to MaxInt32, got %d", got)
	}
}

func TestSinAccuracy(t *testing.T) {
	// The Bhaskara I approximation is good to about 0.3%. Sweep two full
	// turns, both signs.
	for i := -720; i <= 720; i++ {
		angle := float64(i) * math.Pi / 360.0
		got := float64(Sin(FromFloat(float32(angle))).Float())
		want := math.Sin(angle)
		if math.Abs(got-want) > 0.0035 {
			t.Fatalf("Sin(%f) = %f, want %f", angle, got, want)
		}
	}
}

func TestCosAccuracy(t *testing.T) {
	for i := -720; i <= 720; i++ {
		angle := float64(i) * math.Pi / 360.0
		got := float64(Cos(FromFloat(float32(angle))).Float())
		want := math.Cos(angle)
		if math.Abs(got-want) > 0.0035 {
			t.Fatalf("Cos(%f) = %f, want %f", angle, got, want)
		}
	}
}

func TestSinExtremes(t *testing.T) {
	// Must not overflow on negation or phase shift.
	Sin(math.MinInt32)
	Sin(math.MaxInt32)
	Cos(math.MinInt32)
	Cos(math.MaxInt32)

	if got := Sin(0); got != 0 {
		t.Errorf("Sin(0) = %d, want 0", got)
	}
	if got := Sin(Pi); got.Abs() > FromFloat(0.001) {
		t.Errorf("Sin(π) = %f, want ~0", got.Float())
	}
}

func TestSincos(t *testing.T) {
	s, c := Sincos(HalfPi)
	if d := s - One; d.Abs() > FromFloat(0.004) {
		t.Errorf("sin(π/2) = %f, want 1", s.Float())
	}
	if c.Abs() > FromFloat(0.004) {
		t.Errorf("cos(π/2) = %f, want 0", c.Float())
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{2, 1.41421356},
		{0.25, 0.5},
		{10000, 100},
	}
	for _, tc := range cases {
		got := Sqrt(FromFloat(tc.in)).Float()
		if diff := got - tc.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("Sqrt(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
	if got := Sqrt(FromFloat(-4)); got != 0 {
		t.Errorf("Sqrt of negative should be 0, got %d", got)
	}
}
