package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/scenery/internal/config"
	"github.com/taigrr/scenery/internal/demo"
	"github.com/taigrr/scenery/internal/logger"
	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/render"
)

// interactive runs the demo in the terminal until Esc, ctrl+c or a signal.
func interactive(cfg *config.Config, opts demo.Options) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	termRenderer := render.NewTerminalRenderer(term, cols, rows)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	d, err := demo.New(cfg.Demo.Name, fbWidth, fbHeight, opts)
	if err != nil {
		return err
	}
	c := d.Context()

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	logger.Info("started", zap.String("demo", c.Name), zap.Int("cols", cols), zap.Int("rows", rows))

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	hud := NewHUD(c.Name)

	// The scene belongs to the loop goroutine. Input arrives here and is
	// drained at the start of each frame.
	events := make(chan any, 64)
	send := func(e any) bool {
		select {
		case events <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				if !send(resize{cols: ev.Width, rows: ev.Height}) {
					return
				}
				continue
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					if !send(ev) {
						return
					}
					continue
				}
			}
			for _, e := range translate(ev) {
				if !send(e) {
					return
				}
			}
		}
	}()

	handle := func(e any) {
		switch e := e.(type) {
		case resize:
			cols, rows = e.cols, e.rows
			term.Erase()
			term.Resize(cols, rows)
			termRenderer = render.NewTerminalRenderer(term, cols, rows)
			c.Resize(termRenderer.FramebufferSize())
			logger.Debug("resized", zap.Int("cols", cols), zap.Int("rows", rows))
		case uv.KeyPressEvent:
			hud.Visible = !hud.Visible
		case demo.Event:
			demo.Dispatch(d, e)
		}
	}

	return loop.New(cfg.Render.FPS).Run(ctx, func(f loop.Frame) error {
		for pending := true; pending; {
			select {
			case e := <-events:
				handle(e)
			default:
				pending = false
			}
		}

		demo.Step(d, f)

		// Display
		termRenderer.Render(c.Framebuffer)
		area := uv.Rect(0, 0, cols, rows)
		if c.Panel != nil {
			c.Panel.Draw(termRenderer.Screen(), area)
		}
		hud.UpdateFPS(f.Elapsed)
		hud.Draw(termRenderer.Screen(), area, c.Rasterizer.Triangles)

		if err := termRenderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		return nil
	})
}
