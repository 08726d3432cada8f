package game

import "pong/shared"

// Paddle is a player-controlled rectangle that only moves vertically.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	field shared.Field
}

// NewPaddle creates a paddle at the specified position.
func NewPaddle(field shared.Field, x, y, width, height, speed float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
		field:  field,
	}
}

// MoveUp clamps to the top edge.
func (p *Paddle) MoveUp() {
	p.Y -= p.Speed
	if p.Y < 0 {
		p.Y = 0
	}
}

// MoveDown undoes the whole step when it would cross the bottom edge,
// so the paddle can stop short of the wall.
func (p *Paddle) MoveDown() {
	p.Y += p.Speed
	if p.Y+p.Height > p.field.Height {
		p.Y -= p.Speed
	}
}

func (p *Paddle) Rect() shared.Rect {
	return shared.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) Render(c Canvas) error {
	return c.FillRect(shared.White, p.Rect())
}
