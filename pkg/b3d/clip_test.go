package b3d

import "testing"

// Clip against the plane z = 1, keeping z >= 1.
var (
	clipPlane = Vec{0, 0, 1, 1}
	clipNorm  = Vec{0, 0, 1, 1}
)

func TestClipAllInside(t *testing.T) {
	in := Tri{{0, 0, 2, 1}, {1, 0, 3, 1}, {0, 1, 4, 1}}
	var out [2]Tri
	n := ClipAgainstPlane(clipPlane, clipNorm, in, &out)
	if n != 1 {
		t.Fatalf("fully inside: got %d triangles, want 1", n)
	}
	if out[0] != in {
		t.Error("fully inside triangle should pass through unchanged")
	}
}

func TestClipAllOutside(t *testing.T) {
	in := Tri{{0, 0, 0, 1}, {1, 0, 0.5, 1}, {0, 1, -1, 1}}
	var out [2]Tri
	if n := ClipAgainstPlane(clipPlane, clipNorm, in, &out); n != 0 {
		t.Errorf("fully outside: got %d triangles, want 0", n)
	}
}

func TestClipOneInside(t *testing.T) {
	// One vertex at z=3, two at z=0: the surviving triangle has its
	// two new vertices on the plane.
	in := Tri{{0, 0, 3, 1}, {2, 0, 0, 1}, {0, 2, 0, 1}}
	var out [2]Tri
	n := ClipAgainstPlane(clipPlane, clipNorm, in, &out)
	if n != 1 {
		t.Fatalf("one inside: got %d triangles, want 1", n)
	}
	if out[0][0] != in[0] {
		t.Error("inside vertex should be kept first")
	}
	if !nearf(out[0][1].Z, 1) || !nearf(out[0][2].Z, 1) {
		t.Errorf("new vertices should lie on the plane: z = %f, %f",
			out[0][1].Z, out[0][2].Z)
	}
}

func TestClipTwoInside(t *testing.T) {
	// Two vertices inside produce a quad split into two triangles
	// sharing the first intersection point.
	in := Tri{{0, 0, 3, 1}, {2, 0, 3, 1}, {0, 2, 0, 1}}
	var out [2]Tri
	n := ClipAgainstPlane(clipPlane, clipNorm, in, &out)
	if n != 2 {
		t.Fatalf("two inside: got %d triangles, want 2", n)
	}
	if out[0][0] != in[0] || out[0][1] != in[1] {
		t.Error("both inside vertices should be kept")
	}
	if out[1][1] != out[0][2] {
		t.Error("split triangles should share the first intersection point")
	}
	if !nearf(out[0][2].Z, 1) || !nearf(out[1][2].Z, 1) {
		t.Errorf("intersection points should lie on the plane: z = %f, %f",
			out[0][2].Z, out[1][2].Z)
	}
}

func TestClipVertexOnPlane(t *testing.T) {
	// A vertex exactly on the plane counts as inside.
	in := Tri{{0, 0, 1, 1}, {1, 0, 2, 1}, {0, 1, 2, 1}}
	var out [2]Tri
	if n := ClipAgainstPlane(clipPlane, clipNorm, in, &out); n != 1 {
		t.Errorf("on-plane vertex: got %d triangles, want 1", n)
	}
}

func TestIntersectPlaneParallel(t *testing.T) {
	// A segment parallel to the plane returns its start point instead
	// of dividing by a near-zero denominator.
	start := Vec{0, 0, 2, 1}
	end := Vec{5, 5, 2, 1}
	got := intersectPlane(Vec{0, 0, 1, 1}, 1, start, end)
	if got != start {
		t.Errorf("parallel segment: got %+v, want start %+v", got, start)
	}
}

func TestIntersectPlaneClamped(t *testing.T) {
	// The intersection parameter clamps to the segment even when the
	// plane lies beyond it.
	start := Vec{0, 0, 2, 1}
	end := Vec{0, 0, 3, 1}
	got := intersectPlane(Vec{0, 0, 1, 1}, 10, start, end)
	if !nearf(got.Z, 3) {
		t.Errorf("clamped intersection: got z=%f, want 3", got.Z)
	}
}
