package game

import "math"

// clampPaddle pins the paddle to its column and travel bounds. A clamped
// paddle stops dead so it does not jitter against the edge.
func (s *Session) clampPaddle(p *Paddle) bool {
	pos := s.engine.Position(p.ID)
	y, clamped := p.Clamp(pos.Y)
	drifted := pos.X != p.X
	if !clamped && !drifted {
		return false
	}

	s.engine.SetPosition(p.ID, Vec{X: p.X, Y: y})
	if clamped {
		s.engine.SetVelocity(p.ID, Vec{})
	}
	return clamped
}

// clampBall keeps the ball between the walls, reflecting it inward. This
// backs up wall contacts the engine missed.
func (s *Session) clampBall() bool {
	b := s.Ball
	pos := s.engine.Position(b.ID)
	vel := s.engine.Velocity(b.ID)

	switch {
	case pos.Y < b.MinY:
		pos.Y = b.MinY
		vel.Y = math.Abs(vel.Y)
	case pos.Y > b.MaxY:
		pos.Y = b.MaxY
		vel.Y = -math.Abs(vel.Y)
	default:
		return false
	}

	s.engine.SetPosition(b.ID, pos)
	s.engine.SetVelocity(b.ID, vel)
	return true
}

func (s *Session) enforceBoundaries() {
	for _, p := range []*Paddle{s.Player, s.AI} {
		if s.clampPaddle(p) {
			s.log.Debug("paddle clamped", "side", p.Side, "tick", s.tick)
			s.hooks.boundary(p.Role())
		}
	}
	if s.clampBall() {
		s.log.Debug("ball clamped", "tick", s.tick)
		s.hooks.boundary(RoleBall)
	}
}
