package game

import (
	"errors"
	"testing"

	"pong/config"
	"pong/shared"
)

// fakeDriver replays scripted events per frame and records draw calls.
type fakeDriver struct {
	events  [][]shared.Event
	held    map[shared.Key]bool
	calls   []string
	rects   []shared.Rect
	colors  []shared.Color
	polls   int
	ticks   int
	fillErr error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{held: map[shared.Key]bool{}}
}

func (d *fakeDriver) PollEvents() []shared.Event {
	var evs []shared.Event
	if d.polls < len(d.events) {
		evs = d.events[d.polls]
	}
	d.polls++
	return evs
}

func (d *fakeDriver) KeyHeld(k shared.Key) bool { return d.held[k] }

func (d *fakeDriver) Clear(c shared.Color) error {
	d.calls = append(d.calls, "clear")
	d.colors = append(d.colors, c)
	return nil
}

func (d *fakeDriver) FillRect(c shared.Color, r shared.Rect) error {
	if d.fillErr != nil {
		return d.fillErr
	}
	d.calls = append(d.calls, "rect")
	d.colors = append(d.colors, c)
	d.rects = append(d.rects, r)
	return nil
}

func (d *fakeDriver) Present() { d.calls = append(d.calls, "present") }

func (d *fakeDriver) Tick() {
	d.calls = append(d.calls, "tick")
	d.ticks++
}

func quitAt(frame int) [][]shared.Event {
	evs := make([][]shared.Event, frame+1)
	evs[frame] = []shared.Event{{Kind: shared.EventOther}, {Kind: shared.EventQuit}}
	return evs
}

func TestNewGameLayout(t *testing.T) {
	g := NewGame(config.Default(), newFakeDriver())
	if g.State() != Running {
		t.Fatalf("initial state: got=%v", g.State())
	}
	if g.Left.X != 0 || g.Left.Y != 300 {
		t.Errorf("left paddle: got=(%v,%v) want=(0,300)", g.Left.X, g.Left.Y)
	}
	if g.Right.X != 785 || g.Right.Y != 300 {
		t.Errorf("right paddle: got=(%v,%v) want=(785,300)", g.Right.X, g.Right.Y)
	}
	if g.Ball.X != 400 || g.Ball.Y != 300 {
		t.Errorf("ball: got=(%v,%v) want=(400,300)", g.Ball.X, g.Ball.Y)
	}
}

func TestStepFrameOrder(t *testing.T) {
	d := newFakeDriver()
	g := NewGame(config.Default(), d)

	if err := g.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	want := []string{"clear", "rect", "rect", "rect", "present", "tick"}
	if len(d.calls) != len(want) {
		t.Fatalf("calls: got=%v want=%v", d.calls, want)
	}
	for i := range want {
		if d.calls[i] != want[i] {
			t.Fatalf("calls: got=%v want=%v", d.calls, want)
		}
	}
	if d.colors[0] != shared.Black {
		t.Errorf("background: got=%v want black", d.colors[0])
	}
	for i, c := range d.colors[1:] {
		if c != shared.White {
			t.Errorf("rect %d color: got=%v want white", i, c)
		}
	}

	// Left, right, then the ball after its first advance.
	wantRects := []shared.Rect{
		{X: 0, Y: 300, W: 15, H: 80},
		{X: 785, Y: 300, W: 15, H: 80},
		{X: 397, Y: 303, W: 15, H: 15},
	}
	for i, r := range wantRects {
		if d.rects[i] != r {
			t.Errorf("rect %d: got=%+v want=%+v", i, d.rects[i], r)
		}
	}
}

func TestStepQuitTerminates(t *testing.T) {
	d := newFakeDriver()
	d.events = quitAt(0)
	g := NewGame(config.Default(), d)

	if err := g.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.State() != Terminated {
		t.Fatalf("expected terminated, got=%v", g.State())
	}
	if len(d.calls) != 0 {
		t.Fatalf("expected no work after quit, got=%v", d.calls)
	}
	if g.Ball.X != 400 {
		t.Fatalf("ball moved after quit")
	}

	// Further steps are no-ops.
	if err := g.Step(); err != nil {
		t.Fatalf("step after quit: %v", err)
	}
	if d.polls != 1 {
		t.Fatalf("polled after termination: %d", d.polls)
	}
}

func TestRunUntilQuit(t *testing.T) {
	d := newFakeDriver()
	d.events = quitAt(3)
	g := NewGame(config.Default(), d)

	if err := g.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.ticks != 3 {
		t.Fatalf("ticks: got=%d want=3", d.ticks)
	}
	s := g.Snapshot()
	if !s.Terminated || s.Frame != 3 {
		t.Fatalf("snapshot: %+v", s)
	}
	if s.BallX != 391 || s.BallY != 309 {
		t.Fatalf("ball after 3 frames: got=(%v,%v) want=(391,309)", s.BallX, s.BallY)
	}
}

func TestInputMovesPaddles(t *testing.T) {
	tests := []struct {
		name      string
		held      []shared.Key
		leftY     float64
		rightY    float64
		wantLeft  float64
		wantRight float64
	}{
		{"left up", []shared.Key{shared.KeyW}, 300, 300, 295, 300},
		{"left down", []shared.Key{shared.KeyS}, 300, 300, 305, 300},
		{"right up", []shared.Key{shared.KeyUp}, 300, 300, 300, 295},
		{"right down", []shared.Key{shared.KeyDown}, 300, 300, 300, 305},
		{"all keys", []shared.Key{shared.KeyW, shared.KeyS, shared.KeyUp, shared.KeyDown}, 300, 300, 300, 300},
		// Up clamps first, then down applies.
		{"both at top", []shared.Key{shared.KeyW, shared.KeyS}, 0, 300, 5, 300},
		{"both at bottom", []shared.Key{shared.KeyUp, shared.KeyDown}, 300, 520, 300, 520},
		{"right at bottom", []shared.Key{shared.KeyDown}, 300, 520, 300, 520},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newFakeDriver()
			for _, k := range tc.held {
				d.held[k] = true
			}
			g := NewGame(config.Default(), d)
			g.Left.Y = tc.leftY
			g.Right.Y = tc.rightY

			if err := g.Step(); err != nil {
				t.Fatalf("step: %v", err)
			}
			if g.Left.Y != tc.wantLeft {
				t.Errorf("left y: got=%v want=%v", g.Left.Y, tc.wantLeft)
			}
			if g.Right.Y != tc.wantRight {
				t.Errorf("right y: got=%v want=%v", g.Right.Y, tc.wantRight)
			}
		})
	}
}

func TestUpdateReversesOnPaddleHit(t *testing.T) {
	g := NewGame(config.Default(), newFakeDriver())
	g.Ball.X, g.Ball.Y = 5, 310

	g.Update()

	if g.Ball.DX != 1 {
		t.Fatalf("dx: got=%d want=1", g.Ball.DX)
	}
	// Reversal applies before the move in the same frame.
	if g.Ball.X != 8 || g.Ball.Y != 313 {
		t.Fatalf("position: got=(%v,%v) want=(8,313)", g.Ball.X, g.Ball.Y)
	}
}

func TestUpdateReversesOnRightPaddleHit(t *testing.T) {
	g := NewGame(config.Default(), newFakeDriver())
	g.Ball.X, g.Ball.Y = 790, 350
	g.Ball.DX = 1

	g.Update()

	if g.Ball.DX != -1 || g.Ball.X != 787 {
		t.Fatalf("got dx=%d x=%v want dx=-1 x=787", g.Ball.DX, g.Ball.X)
	}
}

func TestUpdateWithoutHit(t *testing.T) {
	g := NewGame(config.Default(), newFakeDriver())
	g.Update()
	if g.Ball.DX != -1 {
		t.Fatalf("dx flipped without a hit")
	}
}

func TestStepReturnsRenderError(t *testing.T) {
	d := newFakeDriver()
	boom := errors.New("renderer lost")
	d.fillErr = boom
	g := NewGame(config.Default(), d)

	err := g.Run()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped render error, got=%v", err)
	}
	if d.ticks != 0 {
		t.Fatalf("frame should not be paced after a render error")
	}
	if g.State() != Running {
		t.Fatalf("render error must not be treated as quit")
	}
}
