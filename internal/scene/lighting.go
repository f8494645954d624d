package scene

import (
	"github.com/softrast/b3d/pkg/b3d"
)

type litFace struct {
	tri        b3d.Tri
	nx, ny, nz float32
}

var cubeFaces = []litFace{
	// Front face (+Z).
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}}, 0, 0, 1},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}}, 0, 0, 1},
	// Back face (-Z).
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}}, 0, 0, -1},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}}, 0, 0, -1},
	// Right face (+X).
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}}, 1, 0, 0},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}}, 1, 0, 0},
	// Left face (-X).
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}}, -1, 0, 0},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}}, -1, 0, 0},
	// Top face (+Y).
	{b3d.Tri{{X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}}, 0, 1, 0},
	{b3d.Tri{{X: -0.5, Y: 0.5, Z: 0.5, W: 1}, {X: 0.5, Y: 0.5, Z: -0.5, W: 1}, {X: -0.5, Y: 0.5, Z: -0.5, W: 1}}, 0, 1, 0},
	// Bottom face (-Y).
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}}, 0, -1, 0},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}}, 0, -1, 0},
}

var pyramidFaces = []litFace{
	// Base.
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}}, 0, -1, 0},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}}, 0, -1, 0},
	// Sides.
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0, Y: 0.5, Z: 0, W: 1}}, 0, 0.4472, 0.8944},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0, Y: 0.5, Z: 0, W: 1}}, 0.8944, 0.4472, 0},
	{b3d.Tri{{X: 0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: 0, Y: 0.5, Z: 0, W: 1}}, 0, 0.4472, -0.8944},
	{b3d.Tri{{X: -0.5, Y: -0.5, Z: -0.5, W: 1}, {X: -0.5, Y: -0.5, Z: 0.5, W: 1}, {X: 0, Y: 0.5, Z: 0, W: 1}}, -0.8944, 0.4472, 0},
}

func init() {
	register(&Scene{
		Name: "lighting",
		FOV:  60,
		Draw: drawLighting,
	})
}

// drawLighting spins a flat-shaded cube and pyramid side by side. The
// light direction is owned by the caller so interactive controls can
// steer it between frames.
func drawLighting(r *b3d.Renderer, t float32) {
	r.SetCamera(0, 0, -3, 0, 0, 0)
	r.Clear()

	r.Reset()
	r.RotateY(t * 0.5)
	r.RotateX(t * 0.3)
	r.Translate(-0.8, 0, 0)
	for _, f := range cubeFaces {
		r.TriangleLit(f.tri, f.nx, f.ny, f.nz, 0x4488FF)
	}

	r.Reset()
	r.RotateY(t * 0.5)
	r.RotateX(t * 0.3)
	r.Translate(0.8, 0, 0)
	for _, f := range pyramidFaces {
		r.TriangleLit(f.tri, f.nx, f.ny, f.nz, 0xFF8844)
	}
}
