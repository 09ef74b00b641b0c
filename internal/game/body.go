package game

// Vec is a 2D vector in playfield units. Y grows downward.
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * f
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// BodyID identifies a body owned by the physics engine
type BodyID int

// Role tags what a body is used for in a session
type Role int

const (
	RoleWall Role = iota
	RolePlayer
	RoleAI
	RoleBall
	RoleLink
)

func (r Role) String() string {
	switch r {
	case RoleWall:
		return "wall"
	case RolePlayer:
		return "player"
	case RoleAI:
		return "ai"
	case RoleBall:
		return "ball"
	case RoleLink:
		return "link"
	}
	return "unknown"
}

// Kind selects how the engine moves a body
type Kind int

const (
	// KindDynamic bodies are integrated and respond to contacts.
	KindDynamic Kind = iota
	// KindKinematic bodies move only by the velocity they are given.
	KindKinematic
	// KindStatic bodies never move.
	KindStatic
)

// ShapeType is the collision shape of a body
type ShapeType int

const (
	ShapeBox ShapeType = iota
	ShapeCircle
	ShapeSegment
)

// Shape describes body geometry. Box uses Width/Height, Circle uses Radius,
// Segment runs from A to B relative to the body position.
type Shape struct {
	Type   ShapeType
	Width  float64
	Height float64
	Radius float64
	A, B   Vec
}

// Size returns the bounding width and height of the shape
func (s Shape) Size() Vec {
	switch s.Type {
	case ShapeCircle:
		return Vec{X: 2 * s.Radius, Y: 2 * s.Radius}
	case ShapeSegment:
		w := s.B.X - s.A.X
		h := s.B.Y - s.A.Y
		if w < 0 {
			w = -w
		}
		if h < 0 {
			h = -h
		}
		return Vec{X: w, Y: h}
	}
	return Vec{X: s.Width, Y: s.Height}
}

// BodySpec is everything the engine needs to create a body
type BodySpec struct {
	Role          Role
	Kind          Kind
	Shape         Shape
	Position      Vec
	Mass          float64
	Restitution   float64
	Friction      float64
	FixedRotation bool // infinite rotational inertia
}

// Engine is the rigid-body simulation the session drives. It owns all body
// state; the session only reads and writes through these calls.
type Engine interface {
	AddBody(spec BodySpec) BodyID
	Position(id BodyID) Vec
	SetPosition(id BodyID, p Vec)
	Velocity(id BodyID) Vec
	SetVelocity(id BodyID, v Vec)
	// Touching reports whether the two bodies overlap right now.
	Touching(a, b BodyID) bool
	Step(dt float64)
}

// BodyState is a read-only snapshot of one body for presentation
type BodyState struct {
	ID       BodyID
	Role     Role
	Position Vec
	Velocity Vec
	Size     Vec
}
