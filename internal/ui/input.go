package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/linkpong/internal/game"
)

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.DirUp
		case 's', 'S':
			return game.DirDown
		}
	}
	return game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// IsMenuKey returns true if the key should go back to the menu
func IsMenuKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'm' || r == 'M')
}

// MenuCommand is what a key does on the menu screen
type MenuCommand int

const (
	MenuNone MenuCommand = iota
	MenuNext
	MenuPrev
	MenuOpen
	MenuJump // select the link given by the returned index
	MenuReset
	MenuNudge
)

// KeyToMenuCommand maps a key on the menu screen. For MenuJump the index is
// the zero-based link number typed.
func KeyToMenuCommand(key tcell.Key, r rune) (MenuCommand, int) {
	switch key {
	case tcell.KeyRight, tcell.KeyTab:
		return MenuNext, 0
	case tcell.KeyLeft, tcell.KeyBacktab:
		return MenuPrev, 0
	case tcell.KeyEnter:
		return MenuOpen, 0
	case tcell.KeyRune:
		switch {
		case r >= '1' && r <= '9':
			return MenuJump, int(r - '1')
		case r == 'r' || r == 'R':
			return MenuReset, 0
		case r == 'n' || r == 'N' || r == ' ':
			return MenuNudge, 0
		case r == 'l' || r == 'd':
			return MenuNext, 0
		case r == 'h' || r == 'a':
			return MenuPrev, 0
		}
	}
	return MenuNone, 0
}
