package scene

import (
	"fmt"

	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/obj"
)

// NewModelScene loads a Wavefront OBJ file and wraps it in a turntable
// scene. The camera is pulled back based on the mesh bounds so the
// whole model stays in frame, and faces are shaded by their average
// height.
func NewModelScene(path string) (*Scene, error) {
	mesh, err := obj.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("model %s has no triangles", path)
	}

	minY, maxY, maxXZ := mesh.Bounds()
	yOffset := (minY + maxY) / 2
	zOffset := -((maxY - minY) + maxXZ)

	draw := func(r *b3d.Renderer, t float32) {
		r.SetCamera(0, yOffset, zOffset, 0, 0, 0)
		r.Clear()
		r.Reset()
		r.RotateY(t * 0.3)

		for _, tri := range mesh.Triangles {
			avgY := (tri[0].Y + tri[1].Y + tri[2].Y) / 3
			brightness := (avgY - minY) / maxY
			c := uint32(50+int(brightness*200)) & 0xff
			r.Triangle(tri, c<<16|c<<8|c)
		}
	}

	return &Scene{Name: "model", FOV: 70, Draw: draw}, nil
}
