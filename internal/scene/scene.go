// Package scene holds the built-in demo scenes for the rasterizer
// viewer. Every scene is a draw function that positions the camera and
// submits its geometry for one animation frame; the caller owns the
// renderer and the frame clock.
package scene

import (
	"fmt"
	"sort"

	"github.com/softrast/b3d/pkg/b3d"
)

// DrawFunc renders one frame at animation time t (seconds).
type DrawFunc func(r *b3d.Renderer, t float32)

// Scene is a named demo with its preferred field of view.
type Scene struct {
	Name string
	FOV  float32
	Draw DrawFunc
}

var registry = map[string]*Scene{}

func register(s *Scene) {
	registry[s.Name] = s
}

// Get returns the scene with the given name.
func Get(name string) (*Scene, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have: %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
