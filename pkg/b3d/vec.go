package b3d

import "github.com/softrast/b3d/pkg/fmath"

// Epsilon is the near-zero threshold used for division guards.
const Epsilon = 1e-8

// Vec is a homogeneous 4-component vector.
type Vec struct {
	X, Y, Z, W float32
}

// Dot returns the 3-component dot product. W is ignored.
func (a Vec) Dot(b Vec) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Length returns the 3-component Euclidean length.
func (a Vec) Length() float32 {
	return fmath.Sqrt(a.Dot(a))
}

// Add returns a + b component-wise, W included.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns a - b component-wise, W included.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the vector scaled by s. W is scaled as well.
func (a Vec) Scale(s float32) Vec {
	return Vec{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div divides X, Y and Z by s and resets W to 1.
func (a Vec) Div(s float32) Vec {
	return Vec{a.X / s, a.Y / s, a.Z / s, 1}
}

// Cross returns the 3-component cross product with W set to 1.
func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		1,
	}
}

// Norm returns the unit vector. Vectors shorter than Epsilon collapse
// to the zero vector instead of dividing by near-zero.
func (a Vec) Norm() Vec {
	l := a.Length()
	if l < Epsilon {
		return Vec{0, 0, 0, 1}
	}
	return Vec{a.X / l, a.Y / l, a.Z / l, 1}
}
