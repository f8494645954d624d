// Package obj loads triangulated Wavefront .obj meshes. Only vertex
// positions and triangular faces are read; texture coordinates,
// normals, materials and groups are skipped.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/softrast/b3d/pkg/b3d"
)

// Mesh is a flat list of triangles ready for submission to the
// rasterizer.
type Mesh struct {
	Triangles []b3d.Tri
}

// Bounds returns the vertical extent and the largest absolute X or Z
// coordinate, useful for centering and scaling a model to the camera.
func (m *Mesh) Bounds() (minY, maxY, maxXZ float32) {
	if len(m.Triangles) == 0 {
		return 0, 0, 0
	}

	minY = m.Triangles[0][0].Y
	maxY = minY
	for _, tri := range m.Triangles {
		for _, v := range tri {
			if v.Y < minY {
				minY = v.Y
			}
			if v.Y > maxY {
				maxY = v.Y
			}
			ax, az := v.X, v.Z
			if ax < 0 {
				ax = -ax
			}
			if az < 0 {
				az = -az
			}
			if ax > maxXZ {
				maxXZ = ax
			}
			if az > maxXZ {
				maxXZ = az
			}
		}
	}
	return minY, maxY, maxXZ
}

// Load reads a mesh from an .obj file on disk.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("obj: %s: %w", path, err)
	}
	return m, nil
}

// Decode parses .obj data from r. Face indices are 1-based per the
// format; a face referencing a vertex that does not exist is an error.
// Faces with more than three indices are rejected rather than
// triangulated.
func Decode(r io.Reader) (*Mesh, error) {
	var verts []b3d.Vec
	var faces [][3]int

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var xyz [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q", lineNo, fields[i+1])
				}
				xyz[i] = float32(f)
			}
			verts = append(verts, b3d.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2], W: 1})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: only triangular faces are supported", lineNo)
			}
			var idx [3]int
			for i := 0; i < 3; i++ {
				// Strip texture/normal references: "5/2/3" -> "5".
				ref, _, _ := strings.Cut(fields[i+1], "/")
				n, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad face index %q", lineNo, fields[i+1])
				}
				idx[i] = n
			}
			faces = append(faces, idx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m := &Mesh{Triangles: make([]b3d.Tri, 0, len(faces))}
	for _, f := range faces {
		var tri b3d.Tri
		for i, n := range f {
			if n <= 0 || n > len(verts) {
				return nil, fmt.Errorf("face index %d out of range (1..%d)", n, len(verts))
			}
			tri[i] = verts[n-1]
		}
		m.Triangles = append(m.Triangles, tri)
	}
	return m, nil
}
