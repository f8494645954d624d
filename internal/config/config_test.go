package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test display defaults
	if cfg.Display.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Display.Height)
	}
	if cfg.Display.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Display.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test render defaults
	if cfg.Render.FOV != 70 {
		t.Errorf("expected fov 70, got %f", cfg.Render.FOV)
	}
	if cfg.Render.Scene != "cubes" {
		t.Errorf("expected scene 'cubes', got %s", cfg.Render.Scene)
	}
	if cfg.Render.Depth != "f32" {
		t.Errorf("expected depth 'f32', got %s", cfg.Render.Depth)
	}
	if cfg.Render.Ambient != 0.2 {
		t.Errorf("expected ambient 0.2, got %f", cfg.Render.Ambient)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "b3d.yaml")

	yamlContent := `
display:
  width: 800
  height: 600
  fullscreen: true
  vsync: false
  show_fps: true

render:
  fov: 90
  scene: "gears"
  depth: "u16"
  ambient: 0.35

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Display.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Display.Height)
	}
	if !cfg.Display.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Display.VSync {
		t.Error("expected vsync to be false")
	}
	if !cfg.Display.ShowFPS {
		t.Error("expected show_fps to be true")
	}

	if cfg.Render.FOV != 90 {
		t.Errorf("expected fov 90, got %f", cfg.Render.FOV)
	}
	if cfg.Render.Scene != "gears" {
		t.Errorf("expected scene 'gears', got %s", cfg.Render.Scene)
	}
	if cfg.Render.Depth != "u16" {
		t.Errorf("expected depth 'u16', got %s", cfg.Render.Depth)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
display:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/b3d.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create b3d.yaml in current directory
	configPath := filepath.Join(tmpDir, "b3d.yaml")
	if err := os.WriteFile(configPath, []byte("display:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find b3d.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Display.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "scene flag",
			setup: func() {
				*flagScene = "donut"
			},
			verify: func(cfg *Config) {
				if cfg.Render.Scene != "donut" {
					t.Errorf("expected scene 'donut', got %s", cfg.Render.Scene)
				}
			},
			teardown: func() {
				*flagScene = ""
			},
		},
		{
			name: "depth flag",
			setup: func() {
				*flagDepth = "q16"
			},
			verify: func(cfg *Config) {
				if cfg.Render.Depth != "q16" {
					t.Errorf("expected depth 'q16', got %s", cfg.Render.Depth)
				}
			},
			teardown: func() {
				*flagDepth = ""
			},
		},
		{
			name: "fov flag",
			setup: func() {
				*flagFOV = 95
			},
			verify: func(cfg *Config) {
				if cfg.Render.FOV != 95 {
					t.Errorf("expected fov 95, got %f", cfg.Render.FOV)
				}
			},
			teardown: func() {
				*flagFOV = 0
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Display.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Display.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(cfg *Config) {
				if cfg.Display.Width != 1024 {
					t.Errorf("expected width 1024, got %d", cfg.Display.Width)
				}
				if cfg.Display.Height != 768 {
					t.Errorf("expected height 768, got %d", cfg.Display.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "b3d.yaml")

	yamlContent := `
display:
  width: 800
  height: 600
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1024
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1024), not file (800)
	if cfg.Display.Width != 1024 {
		t.Errorf("expected width 1024 from flag, got %d", cfg.Display.Width)
	}

	// Height should be from file (600) since no flag override
	if cfg.Display.Height != 600 {
		t.Errorf("expected height 600 from file, got %d", cfg.Display.Height)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "saved", "b3d.yaml")

	cfg := Default()
	cfg.Render.Scene = "terrain"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Render.Scene != "terrain" {
		t.Errorf("expected scene 'terrain' after roundtrip, got %s", loaded.Render.Scene)
	}
}
