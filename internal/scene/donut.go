package scene

import (
	"github.com/chewxy/math32"

	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/fmath"
)

// Warm-to-cool gradient for nicer lighting.
var donutPalette = [...]uint32{
	0x0f1028, 0x14163b, 0x1a1d4e, 0x1f245f, 0x232b70, 0x29327f, 0x2f3990,
	0x3541a1, 0x3c49b3, 0x4352c4, 0x4b5bd4, 0x5365e3, 0x5d6eec, 0x6677f3,
	0x7281f8, 0x7f8bfb, 0x8c94fa, 0x9b9ff5, 0xaaa8ec, 0xbab2e0, 0xcbbbd0,
	0xdcc5bc, 0xeecfa5, 0xf7d88e, 0xfde07a, 0xfdd567, 0xfbc556, 0xf7b445,
	0xf3a235, 0xee9028, 0xe77d1b, 0xdd6911, 0xd05509,
}

func init() {
	register(&Scene{
		Name: "donut",
		FOV:  70,
		Draw: drawDonut,
	})
}

func donutShade(dot float32) uint32 {
	if dot < 0 {
		dot = 0
	}
	if dot > 1 {
		dot = 1
	}
	return donutPalette[int(dot*float32(len(donutPalette)-1))]
}

// drawDonut renders a tumbling torus shaded through a fixed palette so
// the lighting bands stay stable between frames.
func drawDonut(r *b3d.Renderer, t float32) {
	r.SetCamera(0, 0, -6, 0, 0, 0)
	r.Clear()

	r.Reset()
	r.RotateY(t * 0.6)
	r.RotateX(t * 0.35)

	const (
		majorR = float32(2.0)
		minorR = float32(0.7)
		segU   = 96
		segV   = 64
	)
	du := fmath.TwoPi / segU
	dv := fmath.TwoPi / segV

	lx, ly, lz := float32(0.3), float32(0.8), float32(-0.6)
	if llen := fmath.Sqrt(lx*lx + ly*ly + lz*lz); llen > 0 {
		lx, ly, lz = lx/llen, ly/llen, lz/llen
	}

	for iu := 0; iu < segU; iu++ {
		u0 := float32(iu) * du
		u1 := float32(iu+1) * du
		su0, cu0 := fmath.Sincos(u0)
		su1, cu1 := fmath.Sincos(u1)
		for iv := 0; iv < segV; iv++ {
			v0 := float32(iv) * dv
			v1 := float32(iv+1) * dv
			sv0, cv0 := fmath.Sincos(v0)
			sv1, cv1 := fmath.Sincos(v1)

			// Four corners of the quad.
			x00, y00, z00 := (majorR+minorR*cv0)*cu0, (majorR+minorR*cv0)*su0, minorR*sv0
			x10, y10, z10 := (majorR+minorR*cv0)*cu1, (majorR+minorR*cv0)*su1, minorR*sv0
			x01, y01, z01 := (majorR+minorR*cv1)*cu0, (majorR+minorR*cv1)*su0, minorR*sv1
			x11, y11, z11 := (majorR+minorR*cv1)*cu1, (majorR+minorR*cv1)*su1, minorR*sv1

			// Per-vertex normals of the parametric torus, dotted
			// against the light and averaged per triangle.
			d00 := cu0*cv0*lx + su0*cv0*ly + sv0*lz
			d10 := cu1*cv0*lx + su1*cv0*ly + sv0*lz
			d01 := cu0*cv1*lx + su0*cv1*ly + sv1*lz
			d11 := cu1*cv1*lx + su1*cv1*ly + sv1*lz

			dot0 := (d00 + d10 + d11) / 3
			dot1 := (d00 + d11 + d01) / 3

			// Gentle gamma to reduce banding across palette steps.
			dot0 = math32.Pow(math32.Max(dot0, 0), 0.8)
			dot1 = math32.Pow(math32.Max(dot1, 0), 0.8)

			r.Triangle(b3d.Tri{
				{X: x00, Y: y00, Z: z00, W: 1},
				{X: x10, Y: y10, Z: z10, W: 1},
				{X: x11, Y: y11, Z: z11, W: 1},
			}, donutShade(dot0))
			r.Triangle(b3d.Tri{
				{X: x00, Y: y00, Z: z00, W: 1},
				{X: x11, Y: y11, Z: z11, W: 1},
				{X: x01, Y: y01, Z: z01, W: 1},
			}, donutShade(dot1))
		}
	}
}
