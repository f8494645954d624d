package scene

import (
	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/fmath"
)

func init() {
	register(&Scene{
		Name: "cubes",
		FOV:  60,
		Draw: drawCubes,
	})
}

const cubeCount = 100

// Unit cube faces, two triangles each, one pastel color per triangle.
var cubeTris = []struct {
	tri   b3d.Tri
	color uint32
}{
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}}, 0xfcd0a1},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}}, 0xb1b695},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}}, 0x53917e},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}}, 0x63535b},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}}, 0x6d1a36},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}}, 0xd4e09b},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}}, 0xf6f4d2},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}, {X: -0.5, Y: -0.5, Z: -0.5, W: 1}}, 0xcbdfbd},
	{b3d.Tri{{X: -0.5, Y: 0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}}, 0xf19c79},
	{b3d.Tri{{X: -0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}}, 0xa44a3f},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: -0.5, W: 1}}, 0x5465ff},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}}, 0x788bff},
}

// drawCubes spins a trail of cubes receding into the distance.
func drawCubes(r *b3d.Renderer, t float32) {
	r.SetCamera(0, 0, -2, 0, 0, 0)
	r.Clear()

	for i := 0; i < cubeCount; i++ {
		fi := float32(i)
		r.Reset()
		r.RotateZ(t)
		r.RotateY(t)
		r.RotateX(t)
		r.RotateY(fi * 0.1)
		r.Translate(1, 1, fmod(fi*0.1, 100))
		r.RotateZ(fi + t)

		for _, ct := range cubeTris {
			r.Triangle(ct.tri, ct.color)
		}
	}
}

// fmod is the floating-point remainder of x/y for non-negative operands.
func fmod(x, y float32) float32 {
	return x - fmath.Floor(x/y)*y
}
