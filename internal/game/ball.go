package game

import (
	"math"
	"math/rand"
)

type Ball struct {
	ID     BodyID
	Radius float64

	// vertical bounds for the centre
	MinY, MaxY float64
	// horizontal exit thresholds, slightly beyond each edge
	LeftExit, RightExit float64
}

func NewBall(id BodyID, radius, width, height, exitMargin float64) *Ball {
	return &Ball{
		ID:        id,
		Radius:    radius,
		MinY:      radius,
		MaxY:      height - radius,
		LeftExit:  -exitMargin,
		RightExit: width + exitMargin,
	}
}

// Exited reports which side conceded when x is past an exit threshold
func (b *Ball) Exited(x float64) (Side, bool) {
	if x < b.LeftExit {
		return SidePlayer, true
	}
	if x > b.RightExit {
		return SideAI, true
	}
	return 0, false
}

// ServeVelocity builds a launch velocity. The horizontal speed is fixed and
// the vertical component is uniform in [-spread, spread].
func ServeVelocity(rng *rand.Rand, launchRight bool, speed, spread float64) Vec {
	vy := (rng.Float64()*2 - 1) * spread
	if launchRight {
		return Vec{X: speed, Y: vy}
	}
	return Vec{X: -speed, Y: vy}
}

// Speed returns the magnitude of v
func Speed(v Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (b *Ball) spec(center Vec, mass, restitution float64) BodySpec {
	return BodySpec{
		Role:        RoleBall,
		Kind:        KindDynamic,
		Shape:       Shape{Type: ShapeCircle, Radius: b.Radius},
		Position:    center,
		Mass:        mass,
		Restitution: restitution,
	}
}
