package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/linkpong/internal/game"
)

// roleColors colours each kind of body
var roleColors = map[game.Role]tcell.Color{
	game.RolePlayer: tcell.ColorRed,
	game.RoleAI:     tcell.ColorBlue,
	game.RoleBall:   tcell.ColorWhite,
	game.RoleLink:   tcell.ColorTeal,
}

// Screen wraps a tcell screen with the drawing primitives the renderer uses
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// DrawCentered draws text horizontally centred on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)

	if w < 2 || h < 2 {
		s.FillRect(x, y, w, h, style, '█')
		return
	}

	s.screen.SetContent(x, y, topLeft, nil, style)
	s.screen.SetContent(x+w-1, y, topRight, nil, style)
	s.screen.SetContent(x, y+h-1, bottomLeft, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, bottomRight, nil, style)

	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, horizontal, nil, style)
		s.screen.SetContent(i, y+h-1, horizontal, nil, style)
	}

	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, vertical, nil, style)
		s.screen.SetContent(x+w-1, j, vertical, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// RoleStyle returns the foreground style for a body role
func RoleStyle(role game.Role) tcell.Style {
	c, ok := roleColors[role]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(c)
}
