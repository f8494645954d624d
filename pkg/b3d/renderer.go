// Package b3d is a small software 3D rasterizer. It draws flat-shaded
// triangles into caller-owned pixel and depth buffers with an
// immediate-mode API: set up a camera and model transform, then feed
// triangles one at a time. There is no retained scene and no
// allocation after Init.
package b3d

import (
	"errors"
	"math"

	"github.com/softrast/b3d/pkg/fmath"
)

// Projection frustum distances.
const (
	NearDistance = 0.1
	FarDistance  = 100.0
)

// cullThreshold is the dot-product bias for back-face rejection.
// Slightly positive so faces viewed exactly edge-on still draw.
const cullThreshold = 0.01

// MatrixStackSize is the capacity of the model matrix stack.
const MatrixStackSize = 16

// clipBufferSize caps the triangles a single input triangle may fan
// out into while clipping against the four screen edges. Overflow
// drops triangles silently and counts them.
const clipBufferSize = 32

var (
	// ErrInvalidConfig reports zero or negative dimensions or field of view.
	ErrInvalidConfig = errors.New("b3d: invalid dimensions or fov")
	// ErrBufferTooSmall reports pixel or depth buffers shorter than width*height.
	ErrBufferTooSmall = errors.New("b3d: buffer smaller than width*height")
)

// Renderer holds the full pipeline state: target buffers, the
// model/view/projection matrices, the camera pose, lighting, and the
// clipping scratch space. The zero value is unusable; construct with
// New.
type Renderer struct {
	width, height int
	pixels        []uint32
	depth         DepthBuffer

	model Mat
	view  Mat
	proj  Mat

	// Camera pose as last set. LookAt reorients the view matrix
	// without updating yaw/pitch/roll, so these can go stale until
	// the next SetCamera.
	camPos           Vec
	yaw, pitch, roll float32
	fov              float32

	stack    [MatrixStackSize]Mat
	stackTop int

	modelView      Mat
	modelViewDirty bool
	culling        bool

	light   Vec
	ambient float32

	screenPlanes [4][2]Vec

	clipA, clipB [clipBufferSize]Tri
	clipDrops    uint64
}

// New creates a renderer targeting the given pixel and depth buffers.
// Both buffers must hold at least width*height cells; the renderer
// does not allocate or resize them. fov is in degrees. The camera
// starts at the origin looking down +Z and both buffers are cleared.
func New(pixels []uint32, depth DepthBuffer, width, height int, fov float32) (*Renderer, error) {
	r := &Renderer{}
	if err := r.Init(pixels, depth, width, height, fov); err != nil {
		return nil, err
	}
	return r, nil
}

// Init binds the renderer to new target buffers and resets all
// pipeline state. On error the renderer is left uninitialized and
// draws nothing.
func (r *Renderer) Init(pixels []uint32, depth DepthBuffer, width, height int, fov float32) error {
	r.width, r.height = 0, 0
	r.pixels = nil
	r.depth = nil
	r.stackTop = 0
	r.clipDrops = 0
	r.modelViewDirty = true

	if width <= 0 || height <= 0 || fov <= 0 {
		return ErrInvalidConfig
	}
	n, ok := BufferLen(width, height)
	if !ok {
		return ErrInvalidConfig
	}
	if pixels == nil || depth == nil || len(pixels) < n || depth.Len() < n {
		return ErrBufferTooSmall
	}

	r.width, r.height = width, height
	r.pixels = pixels
	r.depth = depth
	r.culling = true
	r.light = Vec{0, 0, 1, 1}
	r.ambient = 0.2
	r.updateScreenPlanes()
	r.Clear()
	r.Reset()
	r.view = Identity()
	r.SetFOV(fov)
	r.SetCamera(0, 0, 0, 0, 0, 0)
	return nil
}

// IsInitialized reports whether the renderer has valid target buffers.
func (r *Renderer) IsInitialized() bool {
	return r.pixels != nil && r.depth != nil
}

// Width returns the target width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the target height in pixels.
func (r *Renderer) Height() int { return r.height }

// BufferLen returns width*height and whether the product fits in an
// int without overflow.
func BufferLen(width, height int) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	if width > math.MaxInt/height {
		return 0, false
	}
	return width * height, true
}

// BufferSize returns the byte size of a width*height buffer with
// elemSize-byte cells, or 0 if any factor is non-positive or the
// product overflows.
func BufferSize(width, height, elemSize int) int {
	n, ok := BufferLen(width, height)
	if !ok || elemSize <= 0 {
		return 0
	}
	if n > math.MaxInt/elemSize {
		return 0
	}
	return n * elemSize
}

// Screen clip planes sit half a pixel inside the top and left edges so
// flooring never produces coordinate -1, and exactly on the bottom and
// right edges.
func (r *Renderer) updateScreenPlanes() {
	r.screenPlanes = [4][2]Vec{
		{{0, 0.5, 0, 1}, {0, 1, 0, 1}},                      // top
		{{0, float32(r.height), 0, 1}, {0, -1, 0, 1}},       // bottom
		{{0.5, 0, 0, 1}, {1, 0, 0, 1}},                      // left
		{{float32(r.width), 0, 0, 1}, {-1, 0, 0, 1}},        // right
	}
}

// Clear zeroes the pixel buffer, resets the depth buffer to its far
// value, and resets the clip drop counter.
func (r *Renderer) Clear() {
	if !r.IsInitialized() {
		return
	}
	r.clipDrops = 0
	n := r.width * r.height
	px := r.pixels[:n]
	for i := range px {
		px[i] = 0
	}
	r.depth.Clear()
}

// Reset replaces the model matrix with identity. The matrix stack is
// unaffected.
func (r *Renderer) Reset() {
	r.model = Identity()
	r.modelViewDirty = true
}

// RotateX post-multiplies a rotation about X onto the model matrix.
func (r *Renderer) RotateX(angle float32) {
	r.model = r.model.Mul(RotationX(angle))
	r.modelViewDirty = true
}

// RotateY post-multiplies a rotation about Y onto the model matrix.
func (r *Renderer) RotateY(angle float32) {
	r.model = r.model.Mul(RotationY(angle))
	r.modelViewDirty = true
}

// RotateZ post-multiplies a rotation about Z onto the model matrix.
func (r *Renderer) RotateZ(angle float32) {
	r.model = r.model.Mul(RotationZ(angle))
	r.modelViewDirty = true
}

// Translate post-multiplies a translation onto the model matrix.
func (r *Renderer) Translate(x, y, z float32) {
	r.model = r.model.Mul(Translation(x, y, z))
	r.modelViewDirty = true
}

// Scale post-multiplies a scale onto the model matrix.
func (r *Renderer) Scale(x, y, z float32) {
	r.model = r.model.Mul(Scaling(x, y, z))
	r.modelViewDirty = true
}

// PushMatrix saves the model matrix. Returns false when the stack is
// full, leaving the stack unchanged.
func (r *Renderer) PushMatrix() bool {
	if r.stackTop >= MatrixStackSize {
		return false
	}
	r.stack[r.stackTop] = r.model
	r.stackTop++
	return true
}

// PopMatrix restores the most recently pushed model matrix. Returns
// false when the stack is empty.
func (r *Renderer) PopMatrix() bool {
	if r.stackTop <= 0 {
		return false
	}
	r.stackTop--
	r.model = r.stack[r.stackTop]
	r.modelViewDirty = true
	return true
}

// ModelMatrix returns a copy of the current model matrix.
func (r *Renderer) ModelMatrix() Mat { return r.model }

// SetModelMatrix replaces the model matrix.
func (r *Renderer) SetModelMatrix(m Mat) {
	r.model = m
	r.modelViewDirty = true
}

// ViewMatrix returns a copy of the current view matrix.
func (r *Renderer) ViewMatrix() Mat { return r.view }

// ProjectionMatrix returns a copy of the current projection matrix.
func (r *Renderer) ProjectionMatrix() Mat { return r.proj }

// SetFOV rebuilds the projection matrix for a field of view in
// degrees. Does nothing before Init.
func (r *Renderer) SetFOV(fov float32) {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	r.fov = fov
	r.proj = Projection(fov, float32(r.height)/float32(r.width),
		NearDistance, FarDistance)
}

// FOV returns the field of view in degrees as last set.
func (r *Renderer) FOV() float32 { return r.fov }

// SetCamera places the camera at (x, y, z) oriented by yaw, pitch and
// roll in radians. Roll tilts the up vector about Z, pitch then yaw
// swing the forward vector.
func (r *Renderer) SetCamera(x, y, z, yaw, pitch, roll float32) {
	r.camPos = Vec{x, y, z, 1}
	r.yaw, r.pitch, r.roll = yaw, pitch, roll

	up := RotationZ(roll).MulVec(Vec{0, 1, 0, 1})
	target := RotationX(pitch).MulVec(Vec{0, 0, 1, 1})
	target = RotationY(yaw).MulVec(target)
	target = r.camPos.Add(target)
	r.view = PointAt(r.camPos, target, up).QuickInverse()
	r.modelViewDirty = true
}

// Camera returns the pose as last set by SetCamera. A LookAt since
// then reorients the view without updating yaw, pitch or roll, so the
// angles may not reflect the actual view direction.
func (r *Renderer) Camera() (x, y, z, yaw, pitch, roll float32) {
	return r.camPos.X, r.camPos.Y, r.camPos.Z, r.yaw, r.pitch, r.roll
}

// LookAt points the camera at a world position from its current
// location, with +Y up.
func (r *Renderer) LookAt(x, y, z float32) {
	r.view = PointAt(r.camPos, Vec{x, y, z, 1}, Vec{0, 1, 0, 1}).QuickInverse()
	r.modelViewDirty = true
}

// SetCulling toggles back-face rejection. Disabling it draws both
// windings, which also routes transforms through a cached model*view
// product.
func (r *Renderer) SetCulling(enabled bool) {
	r.culling = enabled
}

// Culling reports whether back-face rejection is active.
func (r *Renderer) Culling() bool { return r.culling }

// SetLightDirection sets the directional light for lit triangles. The
// vector is normalized; a near-zero or non-finite vector is rejected
// and the previous direction kept.
func (r *Renderer) SetLightDirection(x, y, z float32) {
	if !isFinite(x) || !isFinite(y) || !isFinite(z) {
		return
	}
	v := Vec{x, y, z, 1}
	if v.Length() < Epsilon {
		return
	}
	r.light = v.Norm()
}

// LightDirection returns the current unit light direction.
func (r *Renderer) LightDirection() (x, y, z float32) {
	return r.light.X, r.light.Y, r.light.Z
}

// SetAmbient sets the ambient light level, clamped to [0, 1].
// Non-finite input is rejected, keeping the previous value.
func (r *Renderer) SetAmbient(a float32) {
	if !isFinite(a) {
		return
	}
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	r.ambient = a
}

// Ambient returns the ambient light level.
func (r *Renderer) Ambient() float32 { return r.ambient }

// ClipDropCount returns how many triangles have been dropped by clip
// buffer overflow since the last Clear.
func (r *Renderer) ClipDropCount() uint64 { return r.clipDrops }

// isFinite reports whether f is neither NaN nor an infinity.
func isFinite(f float32) bool {
	return f-f == 0
}

func (r *Renderer) updateModelView() {
	if r.modelViewDirty {
		r.modelView = r.model.Mul(r.view)
		r.modelViewDirty = false
	}
}

// Triangle draws a flat-colored triangle through the full pipeline:
// model transform, optional back-face cull, view transform, near-plane
// clip, projection, perspective divide, screen mapping, clipping
// against the four screen edges, and scanline rasterization. Color is
// 0x00RRGGBB. Returns false when nothing was rasterized.
func (r *Renderer) Triangle(tri Tri, color uint32) bool {
	if !r.IsInitialized() {
		return false
	}

	t := Tri{
		{tri[0].X, tri[0].Y, tri[0].Z, 1},
		{tri[1].X, tri[1].Y, tri[1].Z, 1},
		{tri[2].X, tri[2].Y, tri[2].Z, 1},
	}

	if r.culling {
		t[0] = r.model.MulVec(t[0])
		t[1] = r.model.MulVec(t[1])
		t[2] = r.model.MulVec(t[2])
		lineA := t[1].Sub(t[0])
		lineB := t[2].Sub(t[0])
		normal := lineA.Cross(lineB)
		camRay := t[0].Sub(r.camPos)
		if normal.Dot(camRay) > cullThreshold {
			return false
		}
		t[0] = r.view.MulVec(t[0])
		t[1] = r.view.MulVec(t[1])
		t[2] = r.view.MulVec(t[2])
	} else {
		r.updateModelView()
		t[0] = r.modelView.MulVec(t[0])
		t[1] = r.modelView.MulVec(t[1])
		t[2] = r.modelView.MulVec(t[2])
	}

	var clipped [2]Tri
	count := ClipAgainstPlane(Vec{0, 0, NearDistance, 1}, Vec{0, 0, 1, 1}, t, &clipped)
	if count == 0 {
		return false
	}

	src, dst := &r.clipA, &r.clipB
	srcCount := 0
	for n := 0; n < count; n++ {
		t = clipped[n]
		t[0] = r.proj.MulVec(t[0])
		t[1] = r.proj.MulVec(t[1])
		t[2] = r.proj.MulVec(t[2])
		if fmath.Abs(t[0].W) < Epsilon || fmath.Abs(t[1].W) < Epsilon ||
			fmath.Abs(t[2].W) < Epsilon {
			continue
		}

		t[0] = t[0].Div(t[0].W)
		t[1] = t[1].Div(t[1].W)
		t[2] = t[2].Div(t[2].W)

		xs := float32(r.width) * 0.5
		ys := float32(r.height) * 0.5
		for i := range t {
			t[i].X = (t[i].X + 1) * xs
			t[i].Y = (-t[i].Y + 1) * ys
		}
		if srcCount < clipBufferSize {
			src[srcCount] = t
			srcCount++
		} else {
			r.clipDrops++
		}
	}

	for p := 0; p < 4; p++ {
		dstCount := 0
		for i := 0; i < srcCount; i++ {
			n := ClipAgainstPlane(r.screenPlanes[p][0], r.screenPlanes[p][1],
				src[i], &clipped)
			for w := 0; w < n; w++ {
				if dstCount < clipBufferSize {
					dst[dstCount] = clipped[w]
					dstCount++
				} else {
					r.clipDrops++
				}
			}
		}
		src, dst = dst, src
		srcCount = dstCount
	}
	if srcCount == 0 {
		return false
	}

	for i := 0; i < srcCount; i++ {
		r.rasterize([3]rasterVertex{
			{src[i][0].X, src[i][0].Y, src[i][0].Z},
			{src[i][1].X, src[i][1].Y, src[i][1].Z},
			{src[i][2].X, src[i][2].Y, src[i][2].Z},
		}, color)
	}
	return true
}

// TriangleLit draws a triangle shaded by the directional light. The
// normal (nx, ny, nz) is in model space and normalized internally;
// shading is two-sided, so both windings light the same. The color is
// modulated per call:
//
//	intensity = ambient + (1-ambient) * |normal · light|
func (r *Renderer) TriangleLit(tri Tri, nx, ny, nz float32, color uint32) bool {
	n := Vec{nx, ny, nz, 1}.Norm()
	intensity := r.ambient + (1-r.ambient)*fmath.Abs(n.Dot(r.light))
	if intensity > 1 {
		intensity = 1
	}
	return r.Triangle(tri, modulate(color, intensity))
}

// modulate scales each 8-bit channel of a 0x00RRGGBB color.
func modulate(c uint32, k float32) uint32 {
	rr := uint32(float32((c>>16)&0xFF) * k)
	gg := uint32(float32((c>>8)&0xFF) * k)
	bb := uint32(float32(c&0xFF) * k)
	return rr<<16 | gg<<8 | bb
}

// ToScreen projects a world position through the current matrices and
// returns the rounded screen coordinate. Returns ok=false for points
// at or behind the camera plane.
func (r *Renderer) ToScreen(x, y, z float32) (sx, sy int, ok bool) {
	p := Vec{x, y, z, 1}
	p = r.model.MulVec(p)
	p = r.view.MulVec(p)
	p = r.proj.MulVec(p)
	if p.W < Epsilon {
		return 0, 0, false
	}

	p = p.Div(p.W)
	midX := float32(r.width) / 2.0
	midY := float32(r.height) / 2.0
	sx = int((p.X+1)*midX + 0.5)
	sy = int((-p.Y+1)*midY + 0.5)
	return sx, sy, true
}
