package b3d

import "github.com/softrast/b3d/pkg/fmath"

// degenThreshold rejects scanline spans and triangle halves too thin
// to produce stable interpolation steps.
const degenThreshold = 0.0001

// rasterEdge interpolates position and depth down one triangle edge.
type rasterEdge struct {
	x, z   float32 // start position
	dx, dz float32 // full-edge delta
	t      float32 // interpolation parameter in [0, 1]
	tStep  float32 // step per scanline
}

type rasterVertex struct {
	x, y, z float32
}

// rasterHalf fills scanlines [yStart, yEnd) between the left and right
// edges, advancing both edge parameters once per line.
func (r *Renderer) rasterHalf(yStart, yEnd int, left, right *rasterEdge, c uint32) {
	for y := yStart; y < yEnd; y++ {
		if y < 0 || y >= r.height {
			left.t += left.tStep
			right.t += right.tStep
			continue
		}

		sx := left.x + left.dx*left.t
		sz := left.z + left.dz*left.t
		ex := right.x + right.dx*right.t
		ez := right.z + right.dz*right.t
		if sx > ex {
			sx, ex = ex, sx
			sz, ez = ez, sz
		}
		dx := ex - sx
		if dx < degenThreshold {
			left.t += left.tStep
			right.t += right.tStep
			continue
		}

		depthStep := (ez - sz) / dx

		start, end := int(sx), int(ex)
		if start < 0 {
			start = 0
		} else if start > r.width {
			start = r.width
		}
		if end < 0 {
			end = 0
		} else if end > r.width {
			end = r.width
		}
		if start >= end {
			left.t += left.tStep
			right.t += right.tStep
			continue
		}

		d := sz + depthStep*(float32(start)-sx)
		rowBase := y * r.width

		dp := r.depth
		px := r.pixels
		for i := rowBase + start; i < rowBase+end; i++ {
			if d < dp.Load(i) {
				dp.Store(i, d)
				px[i] = c
			}
			d += depthStep
		}

		left.t += left.tStep
		right.t += right.tStep
	}
}

// rasterize fills a screen-space triangle with a flat color, depth
// testing per pixel. Coordinates are floored so shared edges land on
// the same pixel grid regardless of winding.
func (r *Renderer) rasterize(v [3]rasterVertex, c uint32) {
	a := rasterVertex{fmath.Floor(v[0].x), fmath.Floor(v[0].y), v[0].z}
	b := rasterVertex{fmath.Floor(v[1].x), fmath.Floor(v[1].y), v[1].z}
	cv := rasterVertex{fmath.Floor(v[2].x), fmath.Floor(v[2].y), v[2].z}

	// Screen-space bounding box early-out.
	minX := min3(a.x, b.x, cv.x)
	maxX := max3(a.x, b.x, cv.x)
	minY := min3(a.y, b.y, cv.y)
	maxY := max3(a.y, b.y, cv.y)
	if maxX < 0 || minX >= float32(r.width) || maxY < 0 || minY >= float32(r.height) {
		return
	}

	// Sort vertices by Y.
	if a.y > b.y {
		a, b = b, a
	}
	if a.y > cv.y {
		a, cv = cv, a
	}
	if b.y > cv.y {
		b, cv = cv, b
	}

	dyTotal := cv.y - a.y
	dyTop := b.y - a.y
	if dyTotal < degenThreshold {
		return
	}

	// Left edge spans the whole triangle from A to C.
	left := rasterEdge{
		x: a.x, z: a.z,
		dx: cv.x - a.x, dz: cv.z - a.z,
		tStep: 1.0 / dyTotal,
	}

	// Top half: right edge runs A to B.
	right := rasterEdge{
		x: a.x, z: a.z,
		dx: b.x - a.x, dz: b.z - a.z,
	}
	if dyTop > degenThreshold {
		right.tStep = 1.0 / dyTop
	}
	r.rasterHalf(int(a.y), int(b.y), &left, &right, c)

	// Bottom half: right edge runs B to C.
	dyBot := cv.y - b.y
	right = rasterEdge{
		x: b.x, z: b.z,
		dx: cv.x - b.x, dz: cv.z - b.z,
	}
	if dyBot > degenThreshold {
		right.tStep = 1.0 / dyBot
	}
	r.rasterHalf(int(b.y), int(cv.y), &left, &right, c)
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
