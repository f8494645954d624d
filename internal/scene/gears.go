package scene

import (
	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/fmath"
)

func init() {
	register(&Scene{
		Name: "gears",
		FOV:  60,
		Draw: drawGears,
	})
}

func deg2rad(d float32) float32 {
	return d * fmath.Pi / 180.0
}

// gear submits one gear: inner hole radius r0, teeth centered on the
// outer radius, toothDepth tall, built the way the classic glxgears
// demo laid out its quad strips.
func gear(r *b3d.Renderer, innerRadius, outerRadius, width float32, teeth int, toothDepth float32, color uint32) {
	r0 := innerRadius
	r1 := outerRadius - toothDepth/2
	r2 := outerRadius + toothDepth/2

	da := 2 * fmath.Pi / float32(teeth) / 4
	hw := width * 0.5

	for i := 0; i < teeth; i++ {
		angle := float32(i) * 2 * fmath.Pi / float32(teeth)

		s0, c0 := fmath.Sincos(angle)
		s1, c1 := fmath.Sincos(angle + 1*da)
		s2, c2 := fmath.Sincos(angle + 2*da)
		s3, c3 := fmath.Sincos(angle + 3*da)
		s4, c4 := fmath.Sincos(angle + 4*da)

		// Front ring sections, four per tooth.
		cs := [4]float32{c0, c1, c2, c3}
		ss := [4]float32{s0, s1, s2, s3}
		ce := [4]float32{c1, c2, c3, c4}
		se := [4]float32{s1, s2, s3, s4}
		for j := 0; j < 4; j++ {
			r.TriangleLit(b3d.Tri{
				{X: r0 * cs[j], Y: r0 * ss[j], Z: hw, W: 1},
				{X: r1 * cs[j], Y: r1 * ss[j], Z: hw, W: 1},
				{X: r1 * ce[j], Y: r1 * se[j], Z: hw, W: 1},
			}, 0, 0, 1, color)
			r.TriangleLit(b3d.Tri{
				{X: r0 * cs[j], Y: r0 * ss[j], Z: hw, W: 1},
				{X: r1 * ce[j], Y: r1 * se[j], Z: hw, W: 1},
				{X: r0 * ce[j], Y: r0 * se[j], Z: hw, W: 1},
			}, 0, 0, 1, color)
		}

		// Front sides of teeth.
		r.TriangleLit(b3d.Tri{
			{X: r1 * c0, Y: r1 * s0, Z: hw, W: 1},
			{X: r2 * c1, Y: r2 * s1, Z: hw, W: 1},
			{X: r2 * c2, Y: r2 * s2, Z: hw, W: 1},
		}, 0, 0, 1, color)
		r.TriangleLit(b3d.Tri{
			{X: r1 * c0, Y: r1 * s0, Z: hw, W: 1},
			{X: r2 * c2, Y: r2 * s2, Z: hw, W: 1},
			{X: r1 * c3, Y: r1 * s3, Z: hw, W: 1},
		}, 0, 0, 1, color)

		// Back ring sections and tooth backs, reverse winding.
		csB := [4]float32{c1, c2, c3, c4}
		ssB := [4]float32{s1, s2, s3, s4}
		ceB := [4]float32{c0, c1, c2, c3}
		seB := [4]float32{s0, s1, s2, s3}
		for j := 0; j < 4; j++ {
			r.TriangleLit(b3d.Tri{
				{X: r1 * csB[j], Y: r1 * ssB[j], Z: -hw, W: 1},
				{X: r1 * ceB[j], Y: r1 * seB[j], Z: -hw, W: 1},
				{X: r0 * ceB[j], Y: r0 * seB[j], Z: -hw, W: 1},
			}, 0, 0, -1, color)
			r.TriangleLit(b3d.Tri{
				{X: r0 * csB[j], Y: r0 * ssB[j], Z: -hw, W: 1},
				{X: r1 * csB[j], Y: r1 * ssB[j], Z: -hw, W: 1},
				{X: r0 * ceB[j], Y: r0 * seB[j], Z: -hw, W: 1},
			}, 0, 0, -1, color)
		}

		r.TriangleLit(b3d.Tri{
			{X: r2 * c1, Y: r2 * s1, Z: -hw, W: 1},
			{X: r1 * c0, Y: r1 * s0, Z: -hw, W: 1},
			{X: r1 * c3, Y: r1 * s3, Z: -hw, W: 1},
		}, 0, 0, -1, color)
		r.TriangleLit(b3d.Tri{
			{X: r2 * c2, Y: r2 * s2, Z: -hw, W: 1},
			{X: r2 * c1, Y: r2 * s1, Z: -hw, W: 1},
			{X: r1 * c3, Y: r1 * s3, Z: -hw, W: 1},
		}, 0, 0, -1, color)

		// Outward faces of the tooth: leading edge, top, trailing
		// edge, then the valley between teeth.
		u := r2*c1 - r1*c0
		v := r2*s1 - r1*s0
		if l := fmath.Sqrt(u*u + v*v); l > 0 {
			nx, ny := v/l, -u/l
			r.TriangleLit(b3d.Tri{
				{X: r1 * c0, Y: r1 * s0, Z: hw, W: 1},
				{X: r1 * c0, Y: r1 * s0, Z: -hw, W: 1},
				{X: r2 * c1, Y: r2 * s1, Z: -hw, W: 1},
			}, nx, ny, 0, color)
			r.TriangleLit(b3d.Tri{
				{X: r1 * c0, Y: r1 * s0, Z: hw, W: 1},
				{X: r2 * c1, Y: r2 * s1, Z: -hw, W: 1},
				{X: r2 * c1, Y: r2 * s1, Z: hw, W: 1},
			}, nx, ny, 0, color)
		}

		sTop, cTop := fmath.Sincos(angle + 1.5*da)
		r.TriangleLit(b3d.Tri{
			{X: r2 * c1, Y: r2 * s1, Z: hw, W: 1},
			{X: r2 * c1, Y: r2 * s1, Z: -hw, W: 1},
			{X: r2 * c2, Y: r2 * s2, Z: -hw, W: 1},
		}, cTop, sTop, 0, color)
		r.TriangleLit(b3d.Tri{
			{X: r2 * c1, Y: r2 * s1, Z: hw, W: 1},
			{X: r2 * c2, Y: r2 * s2, Z: -hw, W: 1},
			{X: r2 * c2, Y: r2 * s2, Z: hw, W: 1},
		}, cTop, sTop, 0, color)

		u = r1*c3 - r2*c2
		v = r1*s3 - r2*s2
		if l := fmath.Sqrt(u*u + v*v); l > 0 {
			nx, ny := v/l, -u/l
			r.TriangleLit(b3d.Tri{
				{X: r2 * c2, Y: r2 * s2, Z: hw, W: 1},
				{X: r2 * c2, Y: r2 * s2, Z: -hw, W: 1},
				{X: r1 * c3, Y: r1 * s3, Z: -hw, W: 1},
			}, nx, ny, 0, color)
			r.TriangleLit(b3d.Tri{
				{X: r2 * c2, Y: r2 * s2, Z: hw, W: 1},
				{X: r1 * c3, Y: r1 * s3, Z: -hw, W: 1},
				{X: r1 * c3, Y: r1 * s3, Z: hw, W: 1},
			}, nx, ny, 0, color)
		}

		sRim, cRim := fmath.Sincos(angle + 3.5*da)
		r.TriangleLit(b3d.Tri{
			{X: r1 * c3, Y: r1 * s3, Z: hw, W: 1},
			{X: r1 * c3, Y: r1 * s3, Z: -hw, W: 1},
			{X: r1 * c4, Y: r1 * s4, Z: -hw, W: 1},
		}, cRim, sRim, 0, color)
		r.TriangleLit(b3d.Tri{
			{X: r1 * c3, Y: r1 * s3, Z: hw, W: 1},
			{X: r1 * c4, Y: r1 * s4, Z: -hw, W: 1},
			{X: r1 * c4, Y: r1 * s4, Z: hw, W: 1},
		}, cRim, sRim, 0, color)
	}

	// Inner cylinder surface, normals pointing inward.
	segs := teeth * 4
	for i := 0; i < segs; i++ {
		a0 := float32(i) * 2 * fmath.Pi / float32(segs)
		a1 := float32(i+1) * 2 * fmath.Pi / float32(segs)

		s0, c0 := fmath.Sincos(a0)
		s1, c1 := fmath.Sincos(a1)

		nx := -(c0 + c1)
		ny := -(s0 + s1)

		r.TriangleLit(b3d.Tri{
			{X: r0 * c0, Y: r0 * s0, Z: -hw, W: 1},
			{X: r0 * c0, Y: r0 * s0, Z: hw, W: 1},
			{X: r0 * c1, Y: r0 * s1, Z: hw, W: 1},
		}, nx, ny, 0, color)
		r.TriangleLit(b3d.Tri{
			{X: r0 * c0, Y: r0 * s0, Z: -hw, W: 1},
			{X: r0 * c1, Y: r0 * s1, Z: hw, W: 1},
			{X: r0 * c1, Y: r0 * s1, Z: -hw, W: 1},
		}, nx, ny, 0, color)
	}
}

// drawGears renders the three meshing gears of the glxgears demo; the
// 2:1 gear ratios and phase offsets keep the teeth interlocked.
func drawGears(r *b3d.Renderer, t float32) {
	r.SetCamera(0, 0, -18, 0, 0, 0)
	r.Clear()

	// Normalized (1, 1, 2).
	r.SetLightDirection(0.408248, 0.408248, 0.816497)

	angle := 90 + t*70 // degrees

	r.Reset()
	r.RotateX(deg2rad(20))
	r.RotateY(deg2rad(30))

	r.PushMatrix()
	r.RotateZ(deg2rad(angle))
	r.Translate(-3.0, -2.0, 0)
	gear(r, 1.0, 4.0, 1.0, 20, 0.7, 0xcc1900)
	r.PopMatrix()

	r.PushMatrix()
	r.RotateZ(deg2rad(-2*angle - 9))
	r.Translate(3.1, -2.0, 0)
	gear(r, 0.5, 2.0, 2.0, 10, 0.7, 0x00cc33)
	r.PopMatrix()

	r.PushMatrix()
	r.RotateZ(deg2rad(-2*angle - 25))
	r.Translate(-3.1, 4.2, 0)
	gear(r, 1.3, 2.0, 0.5, 10, 0.7, 0x3333ff)
	r.PopMatrix()
}
