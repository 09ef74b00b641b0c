package game

import (
	"log/slog"
	"math/rand"
	"time"
)

// Hooks are called synchronously from inside the tick pipeline
type Hooks struct {
	OnScore     func(score Score, scorer Side)
	OnPaddleHit func(side Side)
	OnBoundary  func(role Role)
}

func (h Hooks) scored(sc Score, scorer Side) {
	if h.OnScore != nil {
		h.OnScore(sc, scorer)
	}
}

func (h Hooks) paddleHit(side Side) {
	if h.OnPaddleHit != nil {
		h.OnPaddleHit(side)
	}
}

func (h Hooks) boundary(role Role) {
	if h.OnBoundary != nil {
		h.OnBoundary(role)
	}
}

// Options configures a session beyond its tuning
type Options struct {
	Logger *slog.Logger
	Hooks  Hooks
	Seed   int64 // 0 picks a time-based seed
}

// Session is one Pong game: the bodies it created in the engine, the score,
// and the controllers that drive the paddles. It is the only writer of game
// state and is not safe for concurrent use.
type Session struct {
	tuning Tuning
	engine Engine
	log    *slog.Logger
	hooks  Hooks
	rng    *rand.Rand

	Player *Paddle
	AI     *Paddle
	Ball   *Ball
	Walls  [2]BodyID

	input    *InputState
	ai       AIController
	contacts contactTracker
	score    Score

	exitArmed bool
	tick      int
}

// NewSession creates the walls, paddles and ball in engine and serves the
// ball toward a random side. The engine should have zero gravity.
func NewSession(t Tuning, engine Engine, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		tuning:    t,
		engine:    engine,
		log:       logger,
		hooks:     opts.Hooks,
		rng:       rand.New(rand.NewSource(seed)),
		input:     &InputState{},
		ai:        AIController{Speed: t.AISpeed, Deadzone: t.AIDeadzone},
		contacts:  newContactTracker(),
		exitArmed: true,
	}

	s.Walls[0] = engine.AddBody(wallSpec(0, t))
	s.Walls[1] = engine.AddBody(wallSpec(t.Height, t))

	s.Player = NewPaddle(0, SidePlayer, t.PaddleInset, t.PaddleWidth, t.PaddleHeight, t.Height)
	s.Player.ID = engine.AddBody(s.Player.spec(t.Height, t.Restitution))
	s.AI = NewPaddle(0, SideAI, t.Width-t.PaddleInset, t.PaddleWidth, t.PaddleHeight, t.Height)
	s.AI.ID = engine.AddBody(s.AI.spec(t.Height, t.Restitution))

	s.Ball = NewBall(0, t.BallRadius, t.Width, t.Height, t.ExitMargin)
	s.Ball.ID = engine.AddBody(s.Ball.spec(s.center(), t.BallMass, t.Restitution))
	s.serve(s.rng.Intn(2) == 0)

	s.log.Info("session started", "width", t.Width, "height", t.Height, "seed", seed)
	return s
}

// wallSpec is a static segment spanning the court plus its exit margins
func wallSpec(y float64, t Tuning) BodySpec {
	return BodySpec{
		Role: RoleWall,
		Kind: KindStatic,
		Shape: Shape{
			Type: ShapeSegment,
			A:    Vec{X: -t.ExitMargin, Y: 0},
			B:    Vec{X: t.Width + t.ExitMargin, Y: 0},
		},
		Position:    Vec{Y: y},
		Restitution: t.Restitution,
	}
}

func (s *Session) center() Vec {
	return Vec{X: s.tuning.Width / 2, Y: s.tuning.Height / 2}
}

// Input returns the held-direction record key callbacks write to
func (s *Session) Input() *InputState {
	return s.input
}

// Score returns the current score
func (s *Session) Score() Score {
	return s.score
}

// Tick returns how many times Advance has run
func (s *Session) Tick() int {
	return s.tick
}

// Advance runs one tick. The order is fixed: lock paddle columns, drive
// paddles, step the engine, clamp, respond to paddle contacts, score.
func (s *Session) Advance(dt float64) {
	s.tick++

	s.lockPaddles()
	s.drivePaddles()
	s.engine.Step(dt)
	s.enforceBoundaries()
	s.respondToContacts()
	s.checkScore()
}

// lockPaddles re-asserts each paddle's column and drops horizontal velocity
// left over from glancing contacts.
func (s *Session) lockPaddles() {
	for _, p := range []*Paddle{s.Player, s.AI} {
		pos := s.engine.Position(p.ID)
		if pos.X != p.X {
			s.engine.SetPosition(p.ID, Vec{X: p.X, Y: pos.Y})
		}
		if vel := s.engine.Velocity(p.ID); vel.X != 0 {
			s.engine.SetVelocity(p.ID, Vec{Y: vel.Y})
		}
	}
}

func (s *Session) drivePaddles() {
	s.engine.SetVelocity(s.Player.ID, s.input.Held().Velocity(s.tuning.PlayerSpeed))

	ball := s.engine.Position(s.Ball.ID)
	paddle := s.engine.Position(s.AI.ID)
	s.engine.SetVelocity(s.AI.ID, s.ai.Velocity(ball.Y, paddle.Y))
}

// Bodies snapshots the visible bodies for presentation sync. The walls are
// invisible and left out.
func (s *Session) Bodies() []BodyState {
	return []BodyState{
		s.state(s.Player.ID, RolePlayer, Vec{X: s.Player.Width, Y: s.Player.Height}),
		s.state(s.AI.ID, RoleAI, Vec{X: s.AI.Width, Y: s.AI.Height}),
		s.BallState(),
	}
}

// BallState snapshots the ball alone
func (s *Session) BallState() BodyState {
	return s.state(s.Ball.ID, RoleBall, Vec{X: 2 * s.Ball.Radius, Y: 2 * s.Ball.Radius})
}

func (s *Session) state(id BodyID, role Role, size Vec) BodyState {
	return BodyState{
		ID:       id,
		Role:     role,
		Position: s.engine.Position(id),
		Velocity: s.engine.Velocity(id),
		Size:     size,
	}
}
