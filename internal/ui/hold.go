package ui

import "github.com/diegok/linkpong/internal/game"

// HoldTimeout is how many ticks a key counts as held after its last press
// (~133ms at 60Hz). Terminals report repeats, never releases.
const HoldTimeout = 8

// KeySink receives the synthesised key events
type KeySink interface {
	KeyDown(dir game.Direction)
	KeyUp(dir game.Direction)
}

// HoldTracker turns terminal key presses into down/up pairs. A press holds
// its direction for the timeout; a repeat renews it and a different
// direction replaces it at once.
type HoldTracker struct {
	sink    KeySink
	timeout int
	held    game.Direction
	left    int
}

func NewHoldTracker(sink KeySink, timeout int) *HoldTracker {
	if timeout < 1 {
		timeout = 1
	}
	return &HoldTracker{sink: sink, timeout: timeout}
}

// Press records a key press
func (h *HoldTracker) Press(dir game.Direction) {
	if dir == game.DirNone {
		return
	}
	h.held = dir
	h.left = h.timeout
	h.sink.KeyDown(dir)
}

// Tick counts one tick down and releases the key when its hold runs out.
// Call it once per tick before the session samples input.
func (h *HoldTracker) Tick() {
	if h.held == game.DirNone {
		return
	}
	h.left--
	if h.left <= 0 {
		h.Release()
	}
}

// Release lets go of the held key immediately
func (h *HoldTracker) Release() {
	if h.held == game.DirNone {
		return
	}
	dir := h.held
	h.held = game.DirNone
	h.left = 0
	h.sink.KeyUp(dir)
}

// Held returns the direction currently held
func (h *HoldTracker) Held() game.Direction {
	return h.held
}
