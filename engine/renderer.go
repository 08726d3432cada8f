package engine

import (
	"github.com/veandco/go-sdl2/sdl"

	"pong/shared"
)

func (e *Engine) Clear(c shared.Color) error {
	if err := e.Renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return e.Renderer.Clear()
}

func (e *Engine) FillRect(c shared.Color, r shared.Rect) error {
	return DrawRect(e.Renderer, toSDLRect(r), c)
}

// DrawRect draws a filled rectangle with the specified color.
func DrawRect(renderer *sdl.Renderer, rect sdl.Rect, c shared.Color) error {
	if err := renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return renderer.FillRect(&rect)
}

// toSDLRect truncates field coordinates to whole pixels.
func toSDLRect(r shared.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
