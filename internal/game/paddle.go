package game

// Side identifies which end of the court a paddle defends
type Side int

const (
	SidePlayer Side = 0 // left
	SideAI     Side = 1 // right
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}

// Outward is the horizontal sign pointing away from this side's edge
func (s Side) Outward() float64 {
	if s == SidePlayer {
		return 1
	}
	return -1
}

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

type Paddle struct {
	ID     BodyID
	Side   Side
	X      float64 // fixed column, re-asserted every tick
	Width  float64
	Height float64

	// vertical travel bounds for the paddle centre
	TopEdge    float64
	BottomEdge float64
}

func NewPaddle(id BodyID, side Side, x, width, height, courtHeight float64) *Paddle {
	half := height / 2
	return &Paddle{
		ID:         id,
		Side:       side,
		X:          x,
		Width:      width,
		Height:     height,
		TopEdge:    half,
		BottomEdge: courtHeight - half,
	}
}

// Clamp limits a centre y to the travel bounds, reporting whether it moved
func (p *Paddle) Clamp(y float64) (float64, bool) {
	if y < p.TopEdge {
		return p.TopEdge, true
	}
	if y > p.BottomEdge {
		return p.BottomEdge, true
	}
	return y, false
}

// Role returns the body role matching the paddle's side
func (p *Paddle) Role() Role {
	if p.Side == SideAI {
		return RoleAI
	}
	return RolePlayer
}

func (p *Paddle) spec(courtHeight, restitution float64) BodySpec {
	return BodySpec{
		Role:          p.Role(),
		Kind:          KindKinematic,
		Shape:         Shape{Type: ShapeBox, Width: p.Width, Height: p.Height},
		Position:      Vec{X: p.X, Y: courtHeight / 2},
		Restitution:   restitution,
		FixedRotation: true,
	}
}
