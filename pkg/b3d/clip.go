package b3d

// Tri is a triangle of three homogeneous vertices.
type Tri [3]Vec

// intersectPlane returns the point where the segment start-end crosses
// the plane with unit normal norm at distance planeD from the origin.
// The parameter is clamped to [0, 1] so the result stays on the
// segment, and a segment parallel to the plane returns start.
func intersectPlane(norm Vec, planeD float32, start, end Vec) Vec {
	ad := start.Dot(norm)
	bd := end.Dot(norm)
	denom := bd - ad
	if denom < Epsilon && denom > -Epsilon {
		return start
	}
	t := (planeD - ad) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return start.Add(end.Sub(start).Scale(t))
}

// ClipAgainstPlane clips a triangle against the plane through point
// plane with normal norm, keeping the half-space the normal points
// into. Vertices exactly on the plane count as inside. It writes up to
// two triangles into out and returns how many were produced; a fully
// outside triangle yields zero.
func ClipAgainstPlane(plane, norm Vec, in Tri, out *[2]Tri) int {
	norm = norm.Norm()
	planeD := norm.Dot(plane)

	var inside, outside [3]*Vec
	insideCount, outsideCount := 0, 0

	d0 := in[0].Dot(norm) - planeD
	d1 := in[1].Dot(norm) - planeD
	d2 := in[2].Dot(norm) - planeD
	if d0 >= 0 {
		inside[insideCount] = &in[0]
		insideCount++
	} else {
		outside[outsideCount] = &in[0]
		outsideCount++
	}
	if d1 >= 0 {
		inside[insideCount] = &in[1]
		insideCount++
	} else {
		outside[outsideCount] = &in[1]
		outsideCount++
	}
	if d2 >= 0 {
		inside[insideCount] = &in[2]
		insideCount++
	} else {
		outside[outsideCount] = &in[2]
		outsideCount++
	}

	switch {
	case insideCount == 3:
		out[0] = in
		return 1
	case insideCount == 1 && outsideCount == 2:
		out[0][0] = *inside[0]
		out[0][1] = intersectPlane(norm, planeD, *inside[0], *outside[0])
		out[0][2] = intersectPlane(norm, planeD, *inside[0], *outside[1])
		return 1
	case insideCount == 2 && outsideCount == 1:
		out[0][0] = *inside[0]
		out[0][1] = *inside[1]
		out[0][2] = intersectPlane(norm, planeD, *inside[0], *outside[0])
		out[1][0] = *inside[1]
		out[1][1] = out[0][2]
		out[1][2] = intersectPlane(norm, planeD, *inside[1], *outside[0])
		return 2
	}
	return 0
}
