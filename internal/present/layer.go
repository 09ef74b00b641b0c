// Package present mirrors simulated bodies onto visual elements. Bodies know
// nothing about what draws them; the layer keeps the association.
package present

import (
	"github.com/diegok/linkpong/internal/game"
)

// Element is a visual proxy for a body. A zero size means "as big as the
// body".
type Element struct {
	Label  string
	Width  float64
	Height float64
}

// Placement is where an element goes this frame, as a top-left anchor in
// playfield units.
type Placement struct {
	ID      game.BodyID
	Role    game.Role
	Element Element
	Left    float64
	Top     float64
}

// Center returns the body position the placement was derived from
func (p Placement) Center() game.Vec {
	return game.Vec{X: p.Left + p.Element.Width/2, Y: p.Top + p.Element.Height/2}
}

// Layer maps body ids to elements. It is written by the frame loop only.
type Layer struct {
	elements map[game.BodyID]Element
	last     []Placement
}

func NewLayer() *Layer {
	return &Layer{elements: make(map[game.BodyID]Element)}
}

// Bind associates an element with a body, replacing any previous one
func (l *Layer) Bind(id game.BodyID, el Element) {
	l.elements[id] = el
}

func (l *Layer) Unbind(id game.BodyID) {
	delete(l.elements, id)
}

// Element returns the element bound to a body
func (l *Layer) Element(id game.BodyID) (Element, bool) {
	el, ok := l.elements[id]
	return el, ok
}

// Len returns the number of bound bodies
func (l *Layer) Len() int {
	return len(l.elements)
}

// Sync computes placements for every bound body in the snapshot, in snapshot
// order. Unbound bodies are skipped. The result is also kept for Placements.
func (l *Layer) Sync(bodies []game.BodyState) []Placement {
	out := make([]Placement, 0, len(bodies))
	for _, b := range bodies {
		el, ok := l.elements[b.ID]
		if !ok {
			continue
		}
		if el.Width == 0 && el.Height == 0 {
			el.Width, el.Height = b.Size.X, b.Size.Y
		}
		out = append(out, Placement{
			ID:      b.ID,
			Role:    b.Role,
			Element: el,
			Left:    b.Position.X - el.Width/2,
			Top:     b.Position.Y - el.Height/2,
		})
	}
	l.last = out
	return out
}

// Placements returns the result of the last Sync
func (l *Layer) Placements() []Placement {
	return l.last
}

// Reset drops every binding and the last placements
func (l *Layer) Reset() {
	clear(l.elements)
	l.last = nil
}
