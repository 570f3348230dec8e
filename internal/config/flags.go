package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFPS        = flag.Int("fps", 0, "Target FPS")
	flagTexture    = flag.String("texture", "", "Checker texture image for the light demo (PNG/JPG)")
	flagPanorama   = flag.String("panorama", "", "Equirectangular background image for the sphere demo")
	flagSeed       = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flagSnapshot   = flag.String("snapshot", "", "Render off screen and write the last frame to this PNG")
	flagFrames     = flag.Int("frames", 0, "Frames to run before writing a snapshot")
	flagWidth      = flag.Int("width", 0, "Snapshot width in pixels")
	flagHeight     = flag.Int("height", 0, "Snapshot height in pixels")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// ApplyArgs sets the demo name and model path from positional arguments.
func (c *Config) ApplyArgs(args []string) {
	if len(args) > 0 {
		c.Demo.Name = args[0]
	}
	if len(args) > 1 {
		c.Assets.Model = args[1]
	}
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFPS > 0 {
		cfg.Render.FPS = *flagFPS
	}
	if *flagTexture != "" {
		cfg.Assets.Texture = *flagTexture
	}
	if *flagPanorama != "" {
		cfg.Assets.Panorama = *flagPanorama
	}
	if *flagSeed != 0 {
		cfg.Demo.Seed = *flagSeed
	}
	if *flagSnapshot != "" {
		cfg.Snapshot.Path = *flagSnapshot
	}
	if *flagFrames > 0 {
		cfg.Snapshot.Frames = *flagFrames
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
}
