package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Render.FPS)
	}
	if cfg.Render.Width != 320 || cfg.Render.Height != 180 {
		t.Errorf("expected 320x180, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Demo.Name != "sphere" {
		t.Errorf("expected demo 'sphere', got %s", cfg.Demo.Name)
	}
	if cfg.Demo.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Demo.Seed)
	}
	if cfg.Snapshot.Path != "" {
		t.Errorf("expected no snapshot path, got %s", cfg.Snapshot.Path)
	}
	if cfg.Snapshot.Frames != 60 {
		t.Errorf("expected 60 snapshot frames, got %d", cfg.Snapshot.Frames)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenery.yaml")

	yamlContent := `
render:
  fps: 30
  width: 640

assets:
  texture: "checker.png"
  panorama: "sky.jpg"

demo:
  name: picker
  seed: 42

logging:
  level: "debug"
  log_file: "scenery.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Render.FPS)
	}
	if cfg.Render.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Render.Width)
	}
	// Unset keys keep their defaults
	if cfg.Render.Height != 180 {
		t.Errorf("expected default height 180, got %d", cfg.Render.Height)
	}
	if cfg.Assets.Texture != "checker.png" || cfg.Assets.Panorama != "sky.jpg" {
		t.Errorf("unexpected assets %+v", cfg.Assets)
	}
	if cfg.Demo.Name != "picker" || cfg.Demo.Seed != 42 {
		t.Errorf("unexpected demo %+v", cfg.Demo)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "scenery.log" {
		t.Errorf("expected log file 'scenery.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
  fps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/scenery.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Base(dir) != "scenery" {
		t.Errorf("expected a scenery directory, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("scenery.yaml", []byte("render:\n  fps: 24\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find scenery.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "asset flags",
			setup: func() {
				*flagTexture = "tex.png"
				*flagPanorama = "pano.jpg"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Texture != "tex.png" || cfg.Assets.Panorama != "pano.jpg" {
					t.Errorf("unexpected assets %+v", cfg.Assets)
				}
			},
			teardown: func() {
				*flagTexture = ""
				*flagPanorama = ""
			},
		},
		{
			name: "snapshot flags",
			setup: func() {
				*flagSnapshot = "out.png"
				*flagFrames = 5
				*flagWidth = 800
				*flagHeight = 400
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Snapshot.Path != "out.png" || cfg.Snapshot.Frames != 5 {
					t.Errorf("unexpected snapshot %+v", cfg.Snapshot)
				}
				if cfg.Render.Width != 800 || cfg.Render.Height != 400 {
					t.Errorf("expected 800x400, got %dx%d", cfg.Render.Width, cfg.Render.Height)
				}
			},
			teardown: func() {
				*flagSnapshot = ""
				*flagFrames = 0
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "fps and seed flags",
			setup: func() {
				*flagFPS = 24
				*flagSeed = 7
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.FPS != 24 {
					t.Errorf("expected fps 24, got %d", cfg.Render.FPS)
				}
				if cfg.Demo.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Demo.Seed)
				}
			},
			teardown: func() {
				*flagFPS = 0
				*flagSeed = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestApplyArgs(t *testing.T) {
	cfg := Default()
	cfg.ApplyArgs(nil)
	if cfg.Demo.Name != "sphere" {
		t.Errorf("expected default demo, got %s", cfg.Demo.Name)
	}

	cfg.ApplyArgs([]string{"gltf", "duck.glb"})
	if cfg.Demo.Name != "gltf" || cfg.Assets.Model != "duck.glb" {
		t.Errorf("unexpected demo %s model %s", cfg.Demo.Name, cfg.Assets.Model)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenery.yaml")

	yamlContent := `
render:
  fps: 30
  width: 1600
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFPS = 120
	defer func() {
		*flagConfig = ""
		*flagFPS = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag beats file
	if cfg.Render.FPS != 120 {
		t.Errorf("expected fps 120 from flag, got %d", cfg.Render.FPS)
	}
	// File beats default
	if cfg.Render.Width != 1600 {
		t.Errorf("expected width 1600 from file, got %d", cfg.Render.Width)
	}
}

func TestLoadBadFile(t *testing.T) {
	*flagConfig = "/nonexistent/scenery.yaml"
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Demo.Name = "light"
	cfg.Render.FPS = 50
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Demo.Name != "light" || loaded.Render.FPS != 50 {
		t.Errorf("unexpected reloaded config %+v", loaded)
	}
}
