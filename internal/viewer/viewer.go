// Package viewer implements the main display loop and scene switching.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/softrast/b3d/internal/config"
	"github.com/softrast/b3d/internal/input"
	"github.com/softrast/b3d/internal/logger"
	"github.com/softrast/b3d/internal/scene"
	"github.com/softrast/b3d/internal/snapshot"
	"github.com/softrast/b3d/internal/window"
	"github.com/softrast/b3d/pkg/b3d"
	"github.com/softrast/b3d/pkg/fmath"
)

// Viewer is the main application instance.
type Viewer struct {
	cfg     *config.Config
	running bool
	window  *window.Window
	input   *input.Input
	capture *snapshot.Capture

	renderer *b3d.Renderer
	pixels   []uint32

	scenes  []*scene.Scene
	current int

	// Light orbit state, spherical angles in radians.
	lightTheta float32
	lightPhi   float32
	autoLight  bool
	ambient    float32
}

// New creates a viewer instance from the loaded configuration.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.String("scene", cfg.Render.Scene),
		zap.String("depth", cfg.Render.Depth),
	)

	v := &Viewer{
		cfg:       cfg,
		lightPhi:  0.5,
		autoLight: true,
		ambient:   cfg.Render.Ambient,
	}

	w, h := cfg.Display.Width, cfg.Display.Height
	v.pixels = make([]uint32, w*h)
	depth, err := b3d.NewDepthBuffer(cfg.Render.Depth, w*h)
	if err != nil {
		return nil, err
	}

	v.renderer, err = b3d.New(v.pixels, depth, w, h, cfg.Render.FOV)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.SetAmbient(v.ambient)

	for _, name := range scene.Names() {
		s, err := scene.Get(name)
		if err != nil {
			return nil, err
		}
		v.scenes = append(v.scenes, s)
	}
	if cfg.Render.Model != "" {
		s, err := scene.NewModelScene(cfg.Render.Model)
		if err != nil {
			return nil, err
		}
		v.scenes = append(v.scenes, s)
	}
	if err := v.selectScene(cfg.Render.Scene); err != nil {
		return nil, err
	}

	v.window, err = window.New(window.Config{
		Title:      "b3dview",
		Width:      w,
		Height:     h,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.input = input.New()
	v.capture = snapshot.NewCapture("snapshots", "b3d")

	logger.Info("viewer initialized",
		zap.Int("scenes", len(v.scenes)),
		zap.String("current", v.scenes[v.current].Name),
	)
	return v, nil
}

func (v *Viewer) selectScene(name string) error {
	for i, s := range v.scenes {
		if s.Name == name {
			v.setScene(i)
			return nil
		}
	}
	return fmt.Errorf("unknown scene %q", name)
}

func (v *Viewer) setScene(i int) {
	v.current = i
	s := v.scenes[i]
	v.renderer.SetFOV(s.FOV)
	if v.window != nil {
		v.window.SetTitle("b3dview - " + s.Name)
	}
	logger.Info("scene selected", zap.String("name", s.Name))
}

// Run starts the main display loop.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting display loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventKeyDown {
				v.handleKey(event.Sym)
			}
		}

		t := float32(time.Since(start).Seconds())
		if v.autoLight {
			v.lightTheta = t * 0.8
		}
		v.applyLight()

		s := v.scenes[v.current]
		s.Draw(v.renderer, t)

		if err := v.window.Present(v.pixels); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Display.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("b3dview - %s (%d fps)", s.Name, frameCount))
			}
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("clip_drops", v.renderer.ClipDropCount()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleKey(sym sdl.Keycode) {
	switch sym {
	case sdl.K_ESCAPE, sdl.K_q:
		v.running = false

	case sdl.K_TAB:
		v.setScene((v.current + 1) % len(v.scenes))

	case sdl.K_LEFT:
		v.lightTheta -= 0.1
		v.autoLight = false
	case sdl.K_RIGHT:
		v.lightTheta += 0.1
		v.autoLight = false
	case sdl.K_UP:
		v.lightPhi += 0.1
		if v.lightPhi > 1.5 {
			v.lightPhi = 1.5
		}
		v.autoLight = false
	case sdl.K_DOWN:
		v.lightPhi -= 0.1
		if v.lightPhi < -1.5 {
			v.lightPhi = -1.5
		}
		v.autoLight = false
	case sdl.K_SPACE:
		v.autoLight = !v.autoLight
		logger.Info("light auto-rotate", zap.Bool("enabled", v.autoLight))

	case sdl.K_EQUALS, sdl.K_PLUS, sdl.K_KP_PLUS:
		v.ambient += 0.05
		if v.ambient > 1 {
			v.ambient = 1
		}
		v.renderer.SetAmbient(v.ambient)
		logger.Info("ambient changed", zap.Float32("level", v.ambient))
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		v.ambient -= 0.05
		if v.ambient < 0 {
			v.ambient = 0
		}
		v.renderer.SetAmbient(v.ambient)
		logger.Info("ambient changed", zap.Float32("level", v.ambient))

	case sdl.K_s:
		path, err := v.capture.Save(v.pixels, v.renderer.Width(), v.renderer.Height())
		if err != nil {
			logger.Error("snapshot failed", zap.Error(err))
		} else {
			logger.Info("snapshot saved", zap.String("path", path))
		}

	default:
		// Number keys 1..9 select scenes directly.
		if sym >= sdl.K_1 && sym <= sdl.K_9 {
			i := int(sym - sdl.K_1)
			if i < len(v.scenes) {
				v.setScene(i)
			}
		}
	}
}

func (v *Viewer) applyLight() {
	sinPhi, cosPhi := fmath.Sincos(v.lightPhi)
	sinTheta, cosTheta := fmath.Sincos(v.lightTheta)
	v.renderer.SetLightDirection(cosPhi*sinTheta, sinPhi, cosPhi*cosTheta)
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}
