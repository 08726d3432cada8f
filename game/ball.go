package game

import "pong/shared"

type Ball struct {
	X, Y   float64
	DX, DY int // always -1 or +1
	Speed  float64
	Size   float64

	field shared.Field
}

// NewBall places the ball's corner at the center of the field, heading left and down.
func NewBall(field shared.Field, speed, size float64) *Ball {
	return &Ball{
		X:     field.Width / 2,
		Y:     field.Height / 2,
		DX:    -1,
		DY:    1,
		Speed: speed,
		Size:  size,
		field: field,
	}
}

// Hit reports whether the ball's top-left corner lies strictly inside the paddle.
func (b *Ball) Hit(p *Paddle) bool {
	return b.X > p.X && b.X < p.X+p.Width &&
		b.Y > p.Y && b.Y < p.Y+p.Height
}

func (b *Ball) ReverseHorizontal() {
	b.DX = -b.DX
}

// Advance moves the ball one step and bounces it off the top and bottom walls.
func (b *Ball) Advance() {
	b.X += float64(b.DX) * b.Speed
	b.Y += float64(b.DY) * b.Speed

	if b.Y <= 0 || b.Y+b.Size >= b.field.Height {
		b.DY = -b.DY
	}
}

func (b *Ball) Rect() shared.Rect {
	return shared.Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

func (b *Ball) Render(c Canvas) error {
	return c.FillRect(shared.White, b.Rect())
}
