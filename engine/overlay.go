package engine

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Overlay renders a frames-per-second readout in the corner of the window.
type Overlay struct {
	font *ttf.Font
	fps  float64
}

func NewOverlay(fontPath string, size int) (*Overlay, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("ttf init: %w", err)
	}
	font, err := ttf.OpenFont(fontPath, size)
	if err != nil {
		ttf.Quit()
		return nil, fmt.Errorf("open font %s: %w", fontPath, err)
	}
	return &Overlay{font: font}, nil
}

// Record takes the duration of the last frame in milliseconds.
func (o *Overlay) Record(elapsedMs uint32) {
	if elapsedMs == 0 {
		return
	}
	o.fps = 1000.0 / float64(elapsedMs)
}

func (o *Overlay) Text() string {
	return fmt.Sprintf("FPS: %.0f", o.fps)
}

func (o *Overlay) Draw(renderer *sdl.Renderer, x, y int32) error {
	return renderText(renderer, o.font, o.Text(), x, y)
}

func (o *Overlay) Close() {
	o.font.Close()
	ttf.Quit()
}

func renderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32) error {
	color := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	surface, err := font.RenderUTF8Solid(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &rect)
}
