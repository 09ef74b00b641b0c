// Package nav runs the menu screen: navigation links that are also rigid
// bodies. They hang along the top, drop onto the floor after a delay and can
// be reset or nudged, while staying selectable wherever they land.
package nav

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/diegok/linkpong/internal/game"
)

const (
	linkTop    = 50
	linkWidth  = 120
	linkHeight = 40
	groundDrop = 50 // ground centre below the bottom edge
	groundSize = 100
)

// Action is what selecting a link does
type Action int

const (
	ActionPlay Action = iota
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Item describes one link before it has a body
type Item struct {
	Label  string
	Action Action
}

// DefaultItems is the menu shown at startup
func DefaultItems() []Item {
	return []Item{
		{Label: "Play", Action: ActionPlay},
		{Label: "Help", Action: ActionHelp},
		{Label: "Quit", Action: ActionQuit},
	}
}

// Link is a menu item bound to a body
type Link struct {
	Item
	ID     game.BodyID
	Home   game.Vec
	Width  float64
	Height float64
}

// Engine is a game engine that can also freeze and release bodies
type Engine interface {
	game.Engine
	SetStatic(id game.BodyID, static bool)
}

type Options struct {
	Logger *slog.Logger
	Seed   int64 // 0 picks a time-based seed
}

// Menu owns the link bodies and the selection cursor
type Menu struct {
	tuning game.Tuning
	engine Engine
	log    *slog.Logger
	rng    *rand.Rand

	links    []*Link
	ground   game.BodyID
	selected int
	dropped  bool
	tick     int
}

// NewMenu spreads the items evenly along the top of the playfield as static
// bodies, and adds the floor and side walls they land against. The engine
// should carry the nav gravity.
func NewMenu(t game.Tuning, engine Engine, items []Item, opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Menu{
		tuning: t,
		engine: engine,
		log:    logger,
		rng:    rand.New(rand.NewSource(seed)),
	}

	m.ground = engine.AddBody(game.BodySpec{
		Role:        game.RoleWall,
		Kind:        game.KindStatic,
		Shape:       game.Shape{Type: game.ShapeBox, Width: t.Width, Height: groundSize},
		Position:    game.Vec{X: t.Width / 2, Y: t.Height + groundDrop},
		Restitution: t.NavRestitution,
		Friction:    t.NavFriction,
	})
	for _, x := range []float64{0, t.Width} {
		engine.AddBody(game.BodySpec{
			Role:        game.RoleWall,
			Kind:        game.KindStatic,
			Shape:       game.Shape{Type: game.ShapeSegment, A: game.Vec{Y: -t.Height}, B: game.Vec{Y: t.Height}},
			Position:    game.Vec{X: x},
			Restitution: t.NavRestitution,
		})
	}

	step := t.Width / float64(len(items)+1)
	for i, it := range items {
		home := game.Vec{X: step * float64(i+1), Y: linkTop}
		l := &Link{Item: it, Home: home, Width: linkWidth, Height: linkHeight}
		l.ID = engine.AddBody(game.BodySpec{
			Role:          game.RoleLink,
			Kind:          game.KindStatic,
			Shape:         game.Shape{Type: game.ShapeBox, Width: linkWidth, Height: linkHeight},
			Position:      home,
			Mass:          1,
			Restitution:   t.NavRestitution,
			Friction:      t.NavFriction,
			FixedRotation: true,
		})
		m.links = append(m.links, l)
	}

	m.log.Info("menu created", "links", len(m.links), "drop_delay", t.NavDropDelay)
	return m
}

// Advance runs one tick, releasing the links once the drop delay has passed
func (m *Menu) Advance(dt float64) {
	m.tick++
	if !m.dropped && float64(m.tick) >= m.tuning.NavDropDelay {
		m.Drop()
	}
	m.engine.Step(dt)
}

// Drop lets every link fall. Calling it again does nothing.
func (m *Menu) Drop() {
	if m.dropped {
		return
	}
	for _, l := range m.links {
		m.engine.SetStatic(l.ID, false)
	}
	m.dropped = true
	m.log.Debug("links dropped", "tick", m.tick)
}

// Dropped reports whether the links have been released
func (m *Menu) Dropped() bool {
	return m.dropped
}

// Reset puts every link back where it started with no velocity. Dropped
// links stay dynamic and fall again.
func (m *Menu) Reset() {
	for _, l := range m.links {
		m.engine.SetPosition(l.ID, l.Home)
		m.engine.SetVelocity(l.ID, game.Vec{})
	}
	m.log.Debug("links reset", "tick", m.tick)
}

// Nudge kicks every link with a random velocity: sideways either way, and
// upward. Links still hanging are dropped first.
func (m *Menu) Nudge() {
	m.Drop()
	n := m.tuning.NavNudge
	for _, l := range m.links {
		kick := game.Vec{
			X: (m.rng.Float64()*2 - 1) * n,
			Y: -m.rng.Float64() * n,
		}
		m.engine.SetVelocity(l.ID, m.engine.Velocity(l.ID).Add(kick))
	}
}

// Next moves the selection right, wrapping around
func (m *Menu) Next() {
	if len(m.links) > 0 {
		m.selected = (m.selected + 1) % len(m.links)
	}
}

// Prev moves the selection left, wrapping around
func (m *Menu) Prev() {
	if len(m.links) > 0 {
		m.selected = (m.selected + len(m.links) - 1) % len(m.links)
	}
}

// Select moves the cursor to link i. It returns false if i is out of range.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.links) {
		return false
	}
	m.selected = i
	return true
}

// Selected returns the link under the cursor
func (m *Menu) Selected() (Link, bool) {
	if len(m.links) == 0 {
		return Link{}, false
	}
	return *m.links[m.selected], true
}

// SelectedIndex returns the cursor position
func (m *Menu) SelectedIndex() int {
	return m.selected
}

// Links returns a copy of the links in menu order
func (m *Menu) Links() []Link {
	out := make([]Link, len(m.links))
	for i, l := range m.links {
		out[i] = *l
	}
	return out
}

// Tick returns how many times Advance has run
func (m *Menu) Tick() int {
	return m.tick
}

// Bodies snapshots the links for presentation sync
func (m *Menu) Bodies() []game.BodyState {
	out := make([]game.BodyState, len(m.links))
	for i, l := range m.links {
		out[i] = game.BodyState{
			ID:       l.ID,
			Role:     game.RoleLink,
			Position: m.engine.Position(l.ID),
			Velocity: m.engine.Velocity(l.ID),
			Size:     game.Vec{X: l.Width, Y: l.Height},
		}
	}
	return out
}
