package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/linkpong/internal/game"
	"github.com/diegok/linkpong/internal/present"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █

	// MinWidth and MinHeight are the smallest terminal the court fits in
	MinWidth  = 40
	MinHeight = 12
)

// MenuView is everything the menu screen shows
type MenuView struct {
	Placements []present.Placement
	Selected   game.BodyID
	Dropped    bool
}

// GameView is everything the pong screen shows
type GameView struct {
	Placements  []present.Placement
	ScoreText   string
	Tick        int
	PointsToWin int
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
	court  game.Vec
}

// NewRenderer creates a renderer that scales a court of the given size onto
// the screen.
func NewRenderer(screen *Screen, court game.Vec) *Renderer {
	return &Renderer{screen: screen, court: court}
}

// viewport maps playfield units to cells. Row 0 and the last row are
// status bars.
type viewport struct {
	scaleX, scaleY float64
}

func (r *Renderer) viewport() viewport {
	screenW, screenH := r.screen.Size()
	return viewport{
		scaleX: float64(screenW) / r.court.X,
		scaleY: float64(screenH-2) / r.court.Y,
	}
}

// cell returns the cell holding a playfield point
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.scaleX)), int(math.Floor(y*v.scaleY)) + 1
}

// rect returns the cells covered by a placement, at least one cell each way
func (v viewport) rect(p present.Placement) (x, y, w, h int) {
	x, y = v.cell(p.Left, p.Top)
	w = int(math.Round(p.Element.Width * v.scaleX))
	h = int(math.Round(p.Element.Height * v.scaleY))
	return x, y, max(w, 1), max(h, 1)
}

// RenderMenu displays the falling nav links
func (r *Renderer) RenderMenu(view MenuView) {
	r.screen.Clear()
	vp := r.viewport()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawCentered(0, "=== LINKPONG ===", titleStyle)

	for i, p := range view.Placements {
		style := RoleStyle(p.Role)
		if p.ID == view.Selected {
			style = style.Reverse(true).Bold(true)
		}

		x, y, w, h := vp.rect(p)
		if h < 3 {
			// too short for a box: draw the label at the link's centre
			label := fmt.Sprintf("[%d %s]", i+1, p.Element.Label)
			c := p.Center()
			cx, cy := vp.cell(c.X, c.Y)
			r.drawClipped(cx-len(label)/2, cy, label, style)
			continue
		}

		r.screen.DrawBox(x, y, w, h, style)
		label := fmt.Sprintf("%d %s", i+1, p.Element.Label)
		if len(label) > w-2 {
			label = p.Element.Label
		}
		r.drawClipped(x+(w-len(label))/2, y+h/2, label, style)
	}

	hint := "←/→ select | ENTER open | r reset | n nudge | q quit"
	if !view.Dropped {
		hint = "links drop shortly... | " + hint
	}
	r.statusBar(hint)

	r.screen.Show()
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(view GameView) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := r.viewport()

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Draw center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	scoreStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawCentered(0, "[ "+view.ScoreText+" ]", scoreStyle)

	for _, p := range view.Placements {
		style := RoleStyle(p.Role)
		if p.Role == game.RoleBall {
			c := p.Center()
			x, y := vp.cell(c.X, c.Y)
			if x >= 0 && x < screenW && y >= 1 && y < screenH-1 {
				r.screen.SetCell(x, y, style, BallChar)
			}
			continue
		}

		x, y, w, h := vp.rect(p)
		for dy := 0; dy < h; dy++ {
			py := y + dy
			if py < 1 || py >= screenH-1 {
				continue
			}
			for dx := 0; dx < w; dx++ {
				if px := x + dx; px >= 0 && px < screenW {
					r.screen.SetCell(px, py, style, PaddleChar)
				}
			}
		}
	}

	r.statusBar(fmt.Sprintf(" Tick: %d | First to %d wins | m menu | q quit", view.Tick, view.PointsToWin))

	r.screen.Show()
}

// drawClipped draws text only if it fits inside the court rows
func (r *Renderer) drawClipped(x, y int, text string, style tcell.Style) {
	screenW, screenH := r.screen.Size()
	if x >= 0 && x+len(text) <= screenW && y >= 1 && y < screenH-1 {
		r.screen.DrawText(x, y, text, style)
	}
}

func (r *Renderer) statusBar(text string) {
	screenW, screenH := r.screen.Size()
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	r.screen.DrawText(0, statusY, text, statusStyle)
}

// RenderGameOver displays the game over screen
func (r *Renderer) RenderGameOver(score game.Score, winner game.Side) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawCentered(screenH/2-4, "=== GAME OVER ===", titleStyle)

	r.screen.DrawCentered(screenH/2-1, "Final Score: "+score.String(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	var winnerText string
	if winner == game.SidePlayer {
		winnerText = "YOU WIN!"
	} else {
		winnerText = "AI WINS!"
	}
	winnerStyle := RoleStyle(roleOf(winner)).Bold(true)
	r.screen.DrawCentered(screenH/2+1, winnerText, winnerStyle)

	rematchText := "Press ENTER for rematch | 'm' for menu | 'q' to quit"
	r.screen.DrawCentered(screenH/2+4, rematchText, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

func roleOf(side game.Side) game.Role {
	if side == game.SidePlayer {
		return game.RolePlayer
	}
	return game.RoleAI
}

var helpLines = []string{
	"Menu",
	"  ←/→ or tab      move between links",
	"  1-9             jump to a link",
	"  ENTER           open the selected link",
	"  r               put the links back up",
	"  n or space      kick the links around",
	"",
	"Pong",
	"  ↑/↓ or w/s      move your paddle (left)",
	"  m               back to the menu",
	"",
	"q or ESC quits from anywhere",
}

// RenderHelp displays the key reference
func (r *Renderer) RenderHelp() {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	boxW := 48
	boxH := len(helpLines) + 4
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawCentered(boxY, " HELP ", titleStyle)

	for i, line := range helpLines {
		r.screen.DrawText(boxX+2, boxY+2+i, line, tcell.StyleDefault)
	}

	r.statusBar("Press any key to go back")
	r.screen.Show()
}

// TooSmall reports whether the terminal cannot fit the court
func (r *Renderer) TooSmall() bool {
	w, h := r.screen.Size()
	return w < MinWidth || h < MinHeight
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawCentered(screenH/2-2, "ERROR", titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawCentered(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.DrawCentered(screenH/2+2, "Resize the terminal to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
