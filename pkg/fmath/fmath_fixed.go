//go:build b3dfixed

package fmath

import "github.com/softrast/b3d/pkg/fixed"

// Sin returns sin(x) evaluated in Q15.16.
func Sin(x float32) float32 {
	return fixed.Sin(fixed.FromFloat(x)).Float()
}

// Cos returns cos(x) evaluated in Q15.16.
func Cos(x float32) float32 {
	return fixed.Cos(fixed.FromFloat(x)).Float()
}

// Sincos returns sin(x) and cos(x) evaluated in Q15.16.
func Sincos(x float32) (sin, cos float32) {
	s, c := fixed.Sincos(fixed.FromFloat(x))
	return s.Float(), c.Float()
}

// Tan returns sin(x)/cos(x). Angles where the cosine vanishes return 0
// rather than diverging, which the projection setup treats as invalid.
func Tan(x float32) float32 {
	s, c := fixed.Sincos(fixed.FromFloat(x))
	if c.Abs() < fixed.FromFloat(0.0001) {
		return 0
	}
	return s.Div(c).Float()
}

// Sqrt returns the square root of x, or 0 for non-positive inputs.
func Sqrt(x float32) float32 {
	return fixed.Sqrt(fixed.FromFloat(x)).Float()
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Floor returns the largest integer value not greater than x.
func Floor(x float32) float32 {
	return fixed.FromFloat(x).Floor().Float()
}
