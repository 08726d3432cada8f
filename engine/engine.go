package engine

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"pong/config"
)

// Engine is the SDL2 display/input driver for the game loop.
type Engine struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	fps     gfx.FPSmanager
	overlay *Overlay
}

func NewEngine(cfg *config.Config) (*Engine, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, cfg.RenderScaleQuality)

	window, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Field.Width), int32(cfg.Field.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	e := &Engine{
		Window:   window,
		Renderer: renderer,
	}
	gfx.InitFramerate(&e.fps)
	if !gfx.SetFramerate(&e.fps, cfg.FPS) {
		e.Shutdown()
		return nil, fmt.Errorf("set framerate %d", cfg.FPS)
	}

	if cfg.ShowFPS {
		overlay, err := NewOverlay(cfg.FontPath, cfg.FontSize)
		if err != nil {
			// The overlay is optional; play on without it.
			log.Printf("[engine] FPS overlay disabled: %v", err)
		} else {
			e.overlay = overlay
		}
	}

	log.Printf("[engine] %q ready (%vx%v @ %d fps)", cfg.Title, cfg.Field.Width, cfg.Field.Height, cfg.FPS)
	return e, nil
}

func (e *Engine) Shutdown() {
	if e.overlay != nil {
		e.overlay.Close()
	}
	e.Renderer.Destroy()
	e.Window.Destroy()
	sdl.Quit()
}

// Present draws the overlay, if any, and flips the back-buffer.
func (e *Engine) Present() {
	if e.overlay != nil {
		if err := e.overlay.Draw(e.Renderer, 10, 10); err != nil {
			log.Printf("[engine] overlay: %v", err)
		}
	}
	e.Renderer.Present()
}

// Tick blocks until the frame budget since the previous tick has elapsed.
func (e *Engine) Tick() {
	elapsed := gfx.FramerateDelay(&e.fps)
	if e.overlay != nil {
		e.overlay.Record(elapsed)
	}
}
