package shared

// State is a point-in-time copy of the entities owned by the game loop.
type State struct {
	Frame      uint64
	BallX      float64
	BallY      float64
	BallDX     int
	BallDY     int
	LeftY      float64
	RightY     float64
	Terminated bool
}
