package game

import (
	"fmt"
	"log"

	"pong/config"
	"pong/shared"
)

// Canvas is the part of the display the entities draw themselves onto.
type Canvas interface {
	FillRect(c shared.Color, r shared.Rect) error
}

// Driver is the display/input collaborator consumed by the game loop.
type Driver interface {
	Canvas
	PollEvents() []shared.Event
	KeyHeld(k shared.Key) bool
	Clear(c shared.Color) error
	Present()
	// Tick blocks until the frame budget since the previous call has elapsed.
	Tick()
}

// RunState is the state of the game loop.
type RunState int

const (
	Running RunState = iota
	Terminated
)

func (s RunState) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// debugEvery is how often, in frames, a debug snapshot is logged.
const debugEvery = 600

// Game represents the game instance.
type Game struct {
	Driver Driver
	Ball   *Ball
	Left   *Paddle
	Right  *Paddle

	state RunState
	frame uint64
	debug bool
}

func NewGame(cfg *config.Config, d Driver) *Game {
	f := cfg.Field
	tu := cfg.Tuning
	// Left paddle hugs the left edge; the right one is inset by its width.
	left := NewPaddle(f, 0, f.Height/2, tu.PaddleWidth, tu.PaddleHeight, tu.PaddleSpeed)
	right := NewPaddle(f, f.Width-tu.PaddleWidth, f.Height/2, tu.PaddleWidth, tu.PaddleHeight, tu.PaddleSpeed)

	return &Game{
		Driver: d,
		Ball:   NewBall(f, tu.BallSpeed, tu.BallSize),
		Left:   left,
		Right:  right,
		state:  Running,
		debug:  cfg.Debug,
	}
}

func (g *Game) State() RunState {
	return g.state
}

// Run steps frames until a quit signal is observed or rendering fails.
func (g *Game) Run() error {
	for g.state == Running {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single frame. A quit signal ends the frame immediately.
func (g *Game) Step() error {
	if g.state == Terminated {
		return nil
	}

	for _, ev := range g.Driver.PollEvents() {
		if ev.Kind == shared.EventQuit {
			g.state = Terminated
			if g.debug {
				log.Printf("[game] quit after %d frames", g.frame)
			}
			return nil
		}
	}

	g.handleInput()
	g.Update()

	if err := g.Render(); err != nil {
		return fmt.Errorf("render frame %d: %w", g.frame, err)
	}
	g.Driver.Present()
	g.Driver.Tick()

	g.frame++
	if g.debug && g.frame%debugEvery == 0 {
		log.Printf("[game] %+v", g.Snapshot())
	}
	return nil
}

// handleInput applies held keys in order; with both keys held, down wins.
func (g *Game) handleInput() {
	if g.Driver.KeyHeld(shared.KeyW) {
		g.Left.MoveUp()
	}
	if g.Driver.KeyHeld(shared.KeyS) {
		g.Left.MoveDown()
	}
	if g.Driver.KeyHeld(shared.KeyUp) {
		g.Right.MoveUp()
	}
	if g.Driver.KeyHeld(shared.KeyDown) {
		g.Right.MoveDown()
	}
}

// Update tests paddle hits against the pre-move position, then advances the ball.
func (g *Game) Update() {
	if g.Ball.Hit(g.Left) || g.Ball.Hit(g.Right) {
		g.Ball.ReverseHorizontal()
	}
	g.Ball.Advance()
}

func (g *Game) Render() error {
	if err := g.Driver.Clear(shared.Black); err != nil {
		return err
	}
	if err := g.Left.Render(g.Driver); err != nil {
		return err
	}
	if err := g.Right.Render(g.Driver); err != nil {
		return err
	}
	return g.Ball.Render(g.Driver)
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() shared.State {
	return shared.State{
		Frame:      g.frame,
		BallX:      g.Ball.X,
		BallY:      g.Ball.Y,
		BallDX:     g.Ball.DX,
		BallDY:     g.Ball.DY,
		LeftY:      g.Left.Y,
		RightY:     g.Right.Y,
		Terminated: g.state == Terminated,
	}
}
