package shared

// Field is the logical coordinate space every entity lives in.
type Field struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in field coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Color is an opaque RGBA draw color.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Key identifies one of the logical keys the game reads.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return "Unknown"
}

// EventKind is the kind of a pending input signal.
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
)

// Event is a single signal drained from the display driver.
type Event struct {
	Kind EventKind
}
