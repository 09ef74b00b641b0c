package game

import "math"

// contactTracker remembers which ball/paddle pairs overlapped last tick so a
// contact triggers its response once, on the tick it begins.
type contactTracker struct {
	active map[BodyID]bool
}

func newContactTracker() contactTracker {
	return contactTracker{active: make(map[BodyID]bool)}
}

// observe records the contact level for a paddle and reports a rising edge
func (ct *contactTracker) observe(paddle BodyID, touching bool) bool {
	was := ct.active[paddle]
	if !touching {
		delete(ct.active, paddle)
		return false
	}
	ct.active[paddle] = true
	return !was
}

func (ct *contactTracker) clear() {
	clear(ct.active)
}

// deflect returns the ball velocity after striking a paddle. The horizontal
// speed grows by increment, up to maxSpeed when it is positive, and points
// away from the paddle's edge; the paddle's vertical motion adds spin.
func deflect(ball, paddle Vec, side Side, increment, spin, maxSpeed float64) Vec {
	vx := math.Abs(ball.X) + increment
	if maxSpeed > 0 {
		vx = min(vx, maxSpeed)
	}
	return Vec{
		X: side.Outward() * vx,
		Y: ball.Y + paddle.Y*spin,
	}
}

func (s *Session) respondToContacts() {
	for _, p := range []*Paddle{s.Player, s.AI} {
		touching := s.engine.Touching(s.Ball.ID, p.ID)
		if !s.contacts.observe(p.ID, touching) {
			continue
		}

		before := s.engine.Velocity(s.Ball.ID)
		after := deflect(before, s.engine.Velocity(p.ID), p.Side,
			s.tuning.HitIncrement, s.tuning.SpinFactor, s.tuning.MaxBallSpeed)
		s.engine.SetVelocity(s.Ball.ID, after)

		s.log.Debug("paddle hit", "side", p.Side, "tick", s.tick,
			"vx", after.X, "vy", after.Y, "speed", Speed(after))
		s.hooks.paddleHit(p.Side)
	}
}
