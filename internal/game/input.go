package game

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// Velocity maps a held direction to a vertical paddle velocity
func (d Direction) Velocity(speed float64) Vec {
	switch d {
	case DirUp:
		return Vec{Y: -speed}
	case DirDown:
		return Vec{Y: speed}
	}
	return Vec{}
}

// InputState is the currently held direction. Key callbacks write it and the
// session samples it once per tick; the last event wins.
type InputState struct {
	held Direction
}

// KeyDown marks dir as held, replacing whatever was held before
func (in *InputState) KeyDown(dir Direction) {
	if dir == DirNone {
		return
	}
	in.held = dir
}

// KeyUp releases the paddle. Releasing either key stops it.
func (in *InputState) KeyUp(dir Direction) {
	in.held = DirNone
}

// Held returns the direction to apply this tick
func (in *InputState) Held() Direction {
	return in.held
}
