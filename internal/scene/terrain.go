package scene

import (
	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/fmath"
)

const (
	terrainGridSize = 64
	terrainCellSize = float32(0.5)
)

func init() {
	register(&Scene{
		Name: "terrain",
		FOV:  70,
		Draw: drawTerrain,
	})
}

func terrainHeightAt(x, z int, t float32) float32 {
	fx := float32(x) * 0.3
	fz := float32(z) * 0.25
	return fmath.Sin(fx*0.6+t*0.7)*0.6 + fmath.Cos(fz*0.5+t*1.1)*0.4
}

func terrainColor(h float32) uint32 {
	shade := (h + 1.2) * 0.4
	if shade < 0 {
		shade = 0
	}
	if shade > 1 {
		shade = 1
	}
	cr := uint32(80 + shade*100)
	cg := uint32(140 + shade*110)
	cb := uint32(90 + shade*80)
	return cr<<16 | cg<<8 | cb
}

// drawTerrain animates a sine/cosine height field, two triangles per
// grid cell, flat-shaded from the averaged corner heights.
func drawTerrain(r *b3d.Renderer, t float32) {
	r.SetCamera(0, 1.5, -8, 0, 0, 0)
	r.Clear()

	halfGrid := (terrainGridSize - 1) * terrainCellSize * 0.5

	// Tilt the whole patch and slowly orbit it.
	r.Reset()
	r.RotateY(t * 0.15)
	r.RotateX(-0.55)
	r.Translate(0, -1.4, 12)

	for z := 0; z < terrainGridSize-1; z++ {
		for x := 0; x < terrainGridSize-1; x++ {
			h00 := terrainHeightAt(x, z, t)
			h10 := terrainHeightAt(x+1, z, t)
			h01 := terrainHeightAt(x, z+1, t)
			h11 := terrainHeightAt(x+1, z+1, t)

			fx := float32(x)*terrainCellSize - halfGrid
			fz := float32(z) * terrainCellSize
			fxn := fx + terrainCellSize
			fzn := fz + terrainCellSize

			c0 := terrainColor((h00 + h10 + h11) / 3)
			c1 := terrainColor((h00 + h11 + h01) / 3)

			// Winding flipped so culling keeps the patch visible
			// when tilted.
			r.Triangle(b3d.Tri{
				{X: fx, Y: h00, Z: fz, W: 1},
				{X: fxn, Y: h11, Z: fzn, W: 1},
				{X: fxn, Y: h10, Z: fz, W: 1},
			}, c0)
			r.Triangle(b3d.Tri{
				{X: fx, Y: h00, Z: fz, W: 1},
				{X: fx, Y: h01, Z: fzn, W: 1},
				{X: fxn, Y: h11, Z: fzn, W: 1},
			}, c1)
		}
	}
}
