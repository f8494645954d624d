package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Startup scene name")
	flagModel      = flag.String("model", "", "Path to an .obj model for the model scene")
	flagDepth      = flag.String("depth", "", "Depth buffer format: f32, q16 or u16")
	flagFOV        = flag.Float64("fov", 0, "Field of view in degrees")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Display.ShowFPS = true
	}
	if *flagScene != "" {
		cfg.Render.Scene = *flagScene
	}
	if *flagModel != "" {
		cfg.Render.Model = *flagModel
	}
	if *flagDepth != "" {
		cfg.Render.Depth = *flagDepth
	}
	if *flagFOV > 0 {
		cfg.Render.FOV = float32(*flagFOV)
	}
	if *flagWindowed {
		cfg.Display.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Display.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
}
