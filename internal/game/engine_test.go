package game

import "math"

// stubEngine integrates velocities directly and reports contact as
// bounding-box overlap. It never resolves contacts itself, so every velocity
// change a test sees comes from the session.
type stubEngine struct {
	bodies []*stubBody
	forced map[[2]BodyID]bool
	steps  int
}

type stubBody struct {
	spec BodySpec
	pos  Vec
	vel  Vec
}

func newStubEngine() *stubEngine {
	return &stubEngine{forced: make(map[[2]BodyID]bool)}
}

func (e *stubEngine) AddBody(spec BodySpec) BodyID {
	e.bodies = append(e.bodies, &stubBody{spec: spec, pos: spec.Position})
	return BodyID(len(e.bodies) - 1)
}

func (e *stubEngine) Position(id BodyID) Vec       { return e.bodies[id].pos }
func (e *stubEngine) SetPosition(id BodyID, p Vec) { e.bodies[id].pos = p }
func (e *stubEngine) Velocity(id BodyID) Vec       { return e.bodies[id].vel }
func (e *stubEngine) SetVelocity(id BodyID, v Vec) { e.bodies[id].vel = v }

func (e *stubEngine) Step(dt float64) {
	e.steps++
	for _, b := range e.bodies {
		if b.spec.Kind == KindStatic {
			continue
		}
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

// force overrides the geometric contact test for a pair
func (e *stubEngine) force(a, b BodyID, touching bool) {
	e.forced[[2]BodyID{a, b}] = touching
	e.forced[[2]BodyID{b, a}] = touching
}

func (e *stubEngine) Touching(a, b BodyID) bool {
	if v, ok := e.forced[[2]BodyID{a, b}]; ok {
		return v
	}
	ba, bb := e.bodies[a], e.bodies[b]
	sa, sb := ba.spec.Shape.Size(), bb.spec.Shape.Size()
	return math.Abs(ba.pos.X-bb.pos.X) <= (sa.X+sb.X)/2 &&
		math.Abs(ba.pos.Y-bb.pos.Y) <= (sa.Y+sb.Y)/2
}

// newTestSession builds a session on a stub engine with a fixed seed
func newTestSession(t Tuning) (*Session, *stubEngine) {
	e := newStubEngine()
	s := NewSession(t, e, Options{Seed: 42})
	return s, e
}
