// Package config handles scenery configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Assets   AssetsConfig   `yaml:"assets"`
	Demo     DemoConfig     `yaml:"demo"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RenderConfig holds frame rate and headless framebuffer settings.
type RenderConfig struct {
	FPS    int `yaml:"fps"`
	Width  int `yaml:"width"`  // Headless framebuffer width in pixels
	Height int `yaml:"height"` // Headless framebuffer height in pixels
}

// AssetsConfig holds optional asset paths. Empty paths use generated
// stand-ins.
type AssetsConfig struct {
	Texture  string `yaml:"texture"`  // Checker texture for the light demo
	Panorama string `yaml:"panorama"` // Equirectangular background for the sphere demo
	Model    string `yaml:"model"`    // glTF model for the gltf demo
}

// DemoConfig selects and seeds a demo.
type DemoConfig struct {
	Name string `yaml:"name"`
	Seed int64  `yaml:"seed"` // 0 seeds from the clock
}

// SnapshotConfig holds headless rendering settings. A non-empty Path
// renders Frames frames off screen and writes the last one as PNG.
type SnapshotConfig struct {
	Path   string `yaml:"path"`
	Frames int    `yaml:"frames"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			FPS:    60,
			Width:  320,
			Height: 180,
		},
		Demo: DemoConfig{
			Name: "sphere",
		},
		Snapshot: SnapshotConfig{
			Frames: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
