package engine

import (
	"github.com/veandco/go-sdl2/sdl"

	"pong/shared"
)

var scancodes = map[shared.Key]sdl.Scancode{
	shared.KeyW:    sdl.Scancode(sdl.SCANCODE_W),
	shared.KeyS:    sdl.Scancode(sdl.SCANCODE_S),
	shared.KeyUp:   sdl.Scancode(sdl.SCANCODE_UP),
	shared.KeyDown: sdl.Scancode(sdl.SCANCODE_DOWN),
}

// PollEvents drains pending SDL events.
func (e *Engine) PollEvents() []shared.Event {
	var events []shared.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, translateEvent(event))
	}
	return events
}

func translateEvent(event sdl.Event) shared.Event {
	switch event.(type) {
	case *sdl.QuitEvent:
		return shared.Event{Kind: shared.EventQuit}
	}
	return shared.Event{Kind: shared.EventOther}
}

// KeyHeld reports whether the key is currently held down.
func (e *Engine) KeyHeld(k shared.Key) bool {
	sc, ok := scancodes[k]
	if !ok {
		return false
	}
	keys := sdl.GetKeyboardState()
	if int(sc) >= len(keys) {
		return false
	}
	return keys[sc] != 0
}
