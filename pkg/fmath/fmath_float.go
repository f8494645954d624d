//go:build !b3dfixed

package fmath

import "github.com/chewxy/math32"

// Sin returns sin(x).
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns cos(x).
func Cos(x float32) float32 { return math32.Cos(x) }

// Sincos returns sin(x) and cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Tan returns tan(x).
func Tan(x float32) float32 { return math32.Tan(x) }

// Sqrt returns the square root of x, or 0 for non-positive inputs.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Floor returns the largest integer value not greater than x.
func Floor(x float32) float32 { return math32.Floor(x) }
