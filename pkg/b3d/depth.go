package b3d

import (
	"fmt"
	"math"
)

// depthFar is the clear value for the float depth representation,
// effectively an infinitely distant plane.
const depthFar = 1e30

// DepthBuffer is one scanline-addressable depth plane. Depth values
// are the post-divide Z in [0, 1]; Clear resets every cell to the
// representation's farthest value so any fragment passes the first
// test. Implementations trade precision for footprint: 4 bytes per
// cell as float or Q16.16, or 2 bytes quantized.
type DepthBuffer interface {
	// Len returns the number of depth cells.
	Len() int
	// Load returns the depth at cell i.
	Load(i int) float32
	// Store writes the depth at cell i.
	Store(i int, d float32)
	// Clear resets every cell to the far value.
	Clear()
	// Far returns the value Load reports for a cleared cell.
	Far() float32
}

// DepthF32 stores depth as raw float32.
type DepthF32 []float32

// NewDepthF32 allocates a float depth buffer of n cells.
func NewDepthF32(n int) DepthF32 { return make(DepthF32, n) }

func (d DepthF32) Len() int               { return len(d) }
func (d DepthF32) Load(i int) float32     { return d[i] }
func (d DepthF32) Store(i int, v float32) { d[i] = v }
func (d DepthF32) Far() float32           { return depthFar }

func (d DepthF32) Clear() {
	for i := range d {
		d[i] = depthFar
	}
}

// DepthQ16 stores depth as Q16.16 fixed point in an int32, matching
// the arithmetic of FPU-free builds.
type DepthQ16 []int32

// NewDepthQ16 allocates a fixed-point depth buffer of n cells.
func NewDepthQ16(n int) DepthQ16 { return make(DepthQ16, n) }

func (d DepthQ16) Len() int { return len(d) }

func (d DepthQ16) Load(i int) float32 {
	return float32(d[i]) / 65536.0
}

func (d DepthQ16) Store(i int, v float32) {
	d[i] = int32(v * 65536.0)
}

func (d DepthQ16) Far() float32 {
	return float32(math.MaxInt32) / 65536.0
}

func (d DepthQ16) Clear() {
	for i := range d {
		d[i] = math.MaxInt32
	}
}

// DepthU16 quantizes depth to 16 bits across [0, 1], halving the
// buffer footprint for memory-constrained targets.
type DepthU16 []uint16

// NewDepthU16 allocates a 16-bit depth buffer of n cells.
func NewDepthU16(n int) DepthU16 { return make(DepthU16, n) }

func (d DepthU16) Len() int { return len(d) }

// Load widens a stored cell back to [0, 1]. The far value maps to 1.0
// exactly so fragments at the far plane still pass the test; other
// values use the reciprocal multiply v/65535 ≈ (v*65537)>>16.
func (d DepthU16) Load(i int) float32 {
	v := d[i]
	if v == 0xFFFF {
		return 1.0
	}
	return float32((uint32(v)*65537)>>16) / 65536.0
}

// Store clamps to [0, 1] and quantizes with round-to-nearest.
func (d DepthU16) Store(i int, v float32) {
	if v <= 0 {
		d[i] = 0
		return
	}
	if v >= 1 {
		d[i] = 0xFFFF
		return
	}
	d[i] = uint16(v*65535.0 + 0.5)
}

func (d DepthU16) Far() float32 { return 1.0 }

func (d DepthU16) Clear() {
	for i := range d {
		d[i] = 0xFFFF
	}
}

// NewDepthBuffer allocates a depth buffer of n cells in the named
// format: "f32", "q16" or "u16". An empty format means "f32".
func NewDepthBuffer(format string, n int) (DepthBuffer, error) {
	switch format {
	case "f32", "":
		return NewDepthF32(n), nil
	case "q16":
		return NewDepthQ16(n), nil
	case "u16":
		return NewDepthU16(n), nil
	default:
		return nil, fmt.Errorf("unknown depth format %q (want f32, q16 or u16)", format)
	}
}
