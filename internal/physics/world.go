// Package physics adapts the Chipmunk2D port in github.com/jakecoffman/cp to
// the engine interface the game and nav packages drive.
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/diegok/linkpong/internal/game"
)

// World owns a cp space and every body created through it. Bodies are
// addressed by the index they were added at.
type World struct {
	space  *cp.Space
	bodies []*entry
}

type entry struct {
	spec  game.BodySpec
	body  *cp.Body
	shape *cp.Shape
}

// NewWorld creates an empty space with the given gravity in units per tick².
func NewWorld(gravity game.Vec) *World {
	space := cp.NewSpace()
	space.SetGravity(toCP(gravity))
	return &World{space: space}
}

// AddBody creates a body and its single shape in the space
func (w *World) AddBody(spec game.BodySpec) game.BodyID {
	var body *cp.Body
	switch spec.Kind {
	case game.KindStatic:
		body = cp.NewStaticBody()
	case game.KindKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := spec.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, moment(spec.Shape, mass))
	}
	body.SetPosition(toCP(spec.Position))
	w.space.AddBody(body)

	shape := w.space.AddShape(newShape(body, spec.Shape))
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)
	if spec.Mass > 0 {
		// kept on the shape so a static body can later become dynamic
		shape.SetMass(spec.Mass)
	}

	e := &entry{spec: spec, body: body, shape: shape}
	e.fixRotation()
	w.bodies = append(w.bodies, e)
	return game.BodyID(len(w.bodies) - 1)
}

func newShape(body *cp.Body, s game.Shape) *cp.Shape {
	switch s.Type {
	case game.ShapeBox:
		return cp.NewBox(body, s.Width, s.Height, 0)
	case game.ShapeCircle:
		return cp.NewCircle(body, s.Radius, cp.Vector{})
	case game.ShapeSegment:
		return cp.NewSegment(body, toCP(s.A), toCP(s.B), 0)
	}
	panic(fmt.Sprintf("physics: unknown shape type %d", s.Type))
}

func moment(s game.Shape, mass float64) float64 {
	switch s.Type {
	case game.ShapeCircle:
		return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
	case game.ShapeSegment:
		return cp.MomentForSegment(mass, toCP(s.A), toCP(s.B), 0)
	}
	return cp.MomentForBox(mass, s.Width, s.Height)
}

func (e *entry) fixRotation() {
	if e.spec.FixedRotation && e.body.GetType() == cp.BODY_DYNAMIC {
		e.body.SetMoment(math.Inf(1))
	}
}

func (w *World) get(id game.BodyID) *entry {
	if int(id) < 0 || int(id) >= len(w.bodies) {
		panic(fmt.Sprintf("physics: unknown body %d", id))
	}
	return w.bodies[id]
}

func (w *World) Position(id game.BodyID) game.Vec {
	return fromCP(w.get(id).body.Position())
}

// SetPosition teleports a body and recaches its shape so contact queries
// see the new position before the next step.
func (w *World) SetPosition(id game.BodyID, p game.Vec) {
	e := w.get(id)
	e.body.SetPosition(toCP(p))
	e.shape.CacheBB()
}

func (w *World) Velocity(id game.BodyID) game.Vec {
	return fromCP(w.get(id).body.Velocity())
}

func (w *World) SetVelocity(id game.BodyID, v game.Vec) {
	w.get(id).body.SetVelocityVector(toCP(v))
}

// Touching runs the narrow phase directly on the two shapes
func (w *World) Touching(a, b game.BodyID) bool {
	return cp.ShapesCollide(w.get(a).shape, w.get(b).shape).Count > 0
}

// SetStatic freezes a body in place or releases it to the simulation.
// Releasing restores the mass given at creation.
func (w *World) SetStatic(id game.BodyID, static bool) {
	e := w.get(id)
	if static {
		e.body.SetVelocityVector(cp.Vector{})
		e.body.SetAngularVelocity(0)
		e.body.SetType(cp.BODY_STATIC)
		return
	}
	e.body.SetType(cp.BODY_DYNAMIC)
	e.fixRotation()
	e.body.Activate()
}

// IsStatic reports whether a body is currently frozen
func (w *World) IsStatic(id game.BodyID) bool {
	return w.get(id).body.GetType() == cp.BODY_STATIC
}

// Step advances the space by dt ticks
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Len returns how many bodies the world holds
func (w *World) Len() int {
	return len(w.bodies)
}

func toCP(v game.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) game.Vec {
	return game.Vec{X: v.X, Y: v.Y}
}
