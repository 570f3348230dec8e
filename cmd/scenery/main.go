// scenery - 3D scene demos in the terminal
// Small three-style scenes rendered with half-block cells, or headless to
// a PNG snapshot.
//
// Controls:
//
//	Mouse drag   - Orbit the camera (right button pans)
//	Scroll       - Zoom in/out
//	Drag         - Recolor (sphere, gltf)
//	Click        - Pick a box (picker)
//	Arrows/Enter - Edit the parameter panel (light)
//	H            - Toggle the parameter panel
//	?            - Toggle HUD overlay
//	Esc          - Quit
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/taigrr/scenery/internal/config"
	"github.com/taigrr/scenery/internal/demo"
	"github.com/taigrr/scenery/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scenery - 3D scene demos in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scenery [options] <%s> [model.glb]\n\n", strings.Join(demo.Names(), "|"))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag   - Orbit camera (right button pans)\n")
		fmt.Fprintf(os.Stderr, "  Scroll       - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Drag         - Recolor (sphere, gltf)\n")
		fmt.Fprintf(os.Stderr, "  Click        - Pick a box (picker)\n")
		fmt.Fprintf(os.Stderr, "  Arrows/Enter - Edit the parameter panel (light)\n")
		fmt.Fprintf(os.Stderr, "  H            - Toggle the parameter panel\n")
		fmt.Fprintf(os.Stderr, "  ?            - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc          - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.ApplyArgs(flag.Args())

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved config to %s\n", config.DefaultPath())
		return nil
	}

	headless := cfg.Snapshot.Path != ""
	// The alt screen owns stdout, so interactive runs log to the file only.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, headless); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	opts := demo.Options{
		Seed:     cfg.Demo.Seed,
		Texture:  cfg.Assets.Texture,
		Panorama: cfg.Assets.Panorama,
		Model:    cfg.Assets.Model,
		FPS:      cfg.Render.FPS,
		Log:      logger.Named("demo"),
	}

	if headless {
		return snapshot(cfg, opts)
	}
	return interactive(cfg, opts)
}
