package b3d

import "github.com/softrast/b3d/pkg/fmath"

// Mat is a 4x4 matrix stored row-major. Vectors transform as row
// vectors (v' = v*M), so translation lives in the last row:
//
//	[m0  m1  m2  m3 ]
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Composed transforms apply left to right: v * (A*B) applies A first.
type Mat [16]float32

// Identity returns an identity matrix.
func Identity() Mat {
	return Mat{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation about the X axis by a radians.
func RotationX(a float32) Mat {
	s, c := fmath.Sincos(a)
	return Mat{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation about the Y axis by a radians.
func RotationY(a float32) Mat {
	s, c := fmath.Sincos(a)
	return Mat{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation about the Z axis by a radians.
func RotationZ(a float32) Mat {
	s, c := fmath.Sincos(a)
	return Mat{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation by (x, y, z).
func Translation(x, y, z float32) Mat {
	return Mat{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns a non-uniform scale by (x, y, z).
func Scaling(x, y, z float32) Mat {
	return Mat{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Projection returns a perspective projection for a +Z forward camera.
// fov is the field of view in degrees, aspect is height/width. The
// transformed W carries the view-space Z for the perspective divide.
func Projection(fov, aspect, near, far float32) Mat {
	f := 1.0 / fmath.Tan(fov*0.5/180.0*fmath.Pi)
	return Mat{
		aspect * f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (far - near), 1,
		0, 0, (-far * near) / (far - near), 0,
	}
}

// PointAt builds a camera-to-world matrix positioned at pos, looking
// toward target, with up re-orthogonalized against the forward axis.
func PointAt(pos, target, up Vec) Mat {
	forward := target.Sub(pos).Norm()
	up = up.Sub(forward.Scale(up.Dot(forward))).Norm()
	right := up.Cross(forward)
	return Mat{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// QuickInverse inverts a rigid transform by transposing the rotation
// block and recomputing the translation row. It is only valid for
// matrices built from rotations and translations.
func (m Mat) QuickInverse() Mat {
	o := Mat{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		0, 0, 0, 1,
	}
	o[12] = -(m[12]*o[0] + m[13]*o[4] + m[14]*o[8])
	o[13] = -(m[12]*o[1] + m[13]*o[5] + m[14]*o[9])
	o[14] = -(m[12]*o[2] + m[13]*o[6] + m[14]*o[10])
	return o
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat) IsIdentity() bool {
	return m[0] == 1 && m[5] == 1 && m[10] == 1 && m[15] == 1 &&
		m[1] == 0 && m[2] == 0 && m[3] == 0 &&
		m[4] == 0 && m[6] == 0 && m[7] == 0 &&
		m[8] == 0 && m[9] == 0 && m[11] == 0 &&
		m[12] == 0 && m[13] == 0 && m[14] == 0
}

// Mul returns a*b. Multiplying by an exact identity returns the other
// operand without doing the full product.
func (a Mat) Mul(b Mat) Mat {
	if b.IsIdentity() {
		return a
	}
	if a.IsIdentity() {
		return b
	}

	var o Mat
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			o[r*4+c] = a[r*4]*b[c] + a[r*4+1]*b[4+c] +
				a[r*4+2]*b[8+c] + a[r*4+3]*b[12+c]
		}
	}
	return o
}

// MulVec transforms the row vector v by m.
func (m Mat) MulVec(v Vec) Vec {
	return Vec{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}
