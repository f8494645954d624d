// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window and presentation settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	FOV     float32 `yaml:"fov"`     // field of view in degrees
	Scene   string  `yaml:"scene"`   // startup scene name
	Depth   string  `yaml:"depth"`   // depth buffer format: f32, q16 or u16
	Ambient float32 `yaml:"ambient"` // ambient light level [0, 1]
	Model   string  `yaml:"model"`   // optional .obj path for the model scene
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      640,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Render: RenderConfig{
			FOV:     70,
			Scene:   "cubes",
			Depth:   "f32",
			Ambient: 0.2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
