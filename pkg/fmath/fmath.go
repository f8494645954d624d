// Package fmath is the scalar math front for the rasterizer. The
// default build evaluates trigonometry in float32; building with the
// b3dfixed tag routes every call through Q15.16 fixed point instead,
// trading accuracy for FPU-free arithmetic. Both modes share the same
// float32 signatures so callers never change.
package fmath

const (
	// Pi is the float32 π used for angle conversions.
	Pi float32 = 3.1415926536
	// HalfPi is π/2.
	HalfPi float32 = 1.5707963268
	// TwoPi is 2π.
	TwoPi float32 = 6.2831853072
)
