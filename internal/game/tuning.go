package game

import (
	"errors"
	"fmt"
)

// Tuning holds every numeric constant of a session. Speeds are in playfield
// units per tick; a tick is one 60 Hz frame.
type Tuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	PaddleInset  float64 `yaml:"paddle_inset"` // paddle centre distance from its edge

	BallRadius float64 `yaml:"ball_radius"`
	BallMass   float64 `yaml:"ball_mass"`

	PlayerSpeed  float64 `yaml:"player_speed"`
	AISpeed      float64 `yaml:"ai_speed"`
	AIDeadzone   float64 `yaml:"ai_deadzone"`
	SpinFactor   float64 `yaml:"spin_factor"`
	HitIncrement float64 `yaml:"hit_increment"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // cap on |vx| after a hit, 0 for none

	ServeSpeed  float64 `yaml:"serve_speed"`
	ServeSpread float64 `yaml:"serve_spread"` // max |vy| of a serve
	ExitMargin  float64 `yaml:"exit_margin"`  // how far past an edge the ball scores

	Restitution float64 `yaml:"restitution"`

	NavGravity     float64 `yaml:"nav_gravity"`
	NavDropDelay   float64 `yaml:"nav_drop_delay"` // ticks before links fall
	NavRestitution float64 `yaml:"nav_restitution"`
	NavFriction    float64 `yaml:"nav_friction"`
	NavNudge       float64 `yaml:"nav_nudge"`
}

// DefaultTuning returns the standard playfield and speeds
func DefaultTuning() Tuning {
	return Tuning{
		Width:  800,
		Height: 600,

		PaddleWidth:  20,
		PaddleHeight: 100,
		PaddleInset:  30,

		BallRadius: 10,
		BallMass:   1,

		PlayerSpeed:  6,
		AISpeed:      4.5,
		AIDeadzone:   20,
		SpinFactor:   0.5,
		HitIncrement: 1,
		MaxBallSpeed: 30,

		ServeSpeed:  5,
		ServeSpread: 3,
		ExitMargin:  20,

		Restitution: 1,

		NavGravity:     0.28,
		NavDropDelay:   120,
		NavRestitution: 0.8,
		NavFriction:    0.1,
		NavNudge:       6,
	}
}

// Validate rejects tunings the session cannot honour
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"width", t.Width},
		{"height", t.Height},
		{"paddle_width", t.PaddleWidth},
		{"paddle_height", t.PaddleHeight},
		{"ball_radius", t.BallRadius},
		{"ball_mass", t.BallMass},
		{"player_speed", t.PlayerSpeed},
		{"ai_speed", t.AISpeed},
		{"serve_speed", t.ServeSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", p.name, p.value)
		}
	}

	if t.AIDeadzone < 0 || t.SpinFactor < 0 || t.HitIncrement < 0 || t.ServeSpread < 0 || t.ExitMargin < 0 {
		return errors.New("ai_deadzone, spin_factor, hit_increment, serve_spread and exit_margin must not be negative")
	}
	if t.MaxBallSpeed < 0 {
		return fmt.Errorf("max_ball_speed must not be negative, got %g", t.MaxBallSpeed)
	}
	if t.MaxBallSpeed > 0 && t.MaxBallSpeed < t.ServeSpeed {
		return fmt.Errorf("max_ball_speed %g is below serve_speed %g", t.MaxBallSpeed, t.ServeSpeed)
	}
	if t.NavGravity < 0 || t.NavDropDelay < 0 || t.NavFriction < 0 || t.NavNudge < 0 {
		return errors.New("nav_gravity, nav_drop_delay, nav_friction and nav_nudge must not be negative")
	}
	if t.NavRestitution < 0 || t.NavRestitution > 1 {
		return fmt.Errorf("nav_restitution must be within [0, 1], got %g", t.NavRestitution)
	}
	if t.PaddleHeight >= t.Height {
		return fmt.Errorf("paddle_height %g does not fit playfield height %g", t.PaddleHeight, t.Height)
	}
	if 2*t.BallRadius >= t.Height {
		return fmt.Errorf("ball_radius %g does not fit playfield height %g", t.BallRadius, t.Height)
	}
	if t.PaddleInset*2 >= t.Width {
		return fmt.Errorf("paddle_inset %g leaves no court on width %g", t.PaddleInset, t.Width)
	}
	return nil
}
