package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/linkpong/internal/audio"
	"github.com/diegok/linkpong/internal/config"
	"github.com/diegok/linkpong/internal/game"
	"github.com/diegok/linkpong/internal/nav"
	"github.com/diegok/linkpong/internal/physics"
	"github.com/diegok/linkpong/internal/present"
	"github.com/diegok/linkpong/internal/ui"
)

const (
	// TickDuration is one simulation tick (60 Hz)
	TickDuration = time.Second / 60
	// frameInterval paces rendering at ~60fps
	frameInterval = 16 * time.Millisecond
	// maxCatchUp bounds the ticks run for one frame after a stall
	maxCatchUp = 5
)

type mode int

const (
	modeMenu mode = iota
	modeHelp
	modePong
	modeGameOver
)

func (m mode) String() string {
	switch m {
	case modeMenu:
		return "menu"
	case modeHelp:
		return "help"
	case modePong:
		return "pong"
	case modeGameOver:
		return "game over"
	}
	return "unknown"
}

// App is the main application controller that manages the game lifecycle.
// Everything except the event pump runs on the frame loop goroutine.
type App struct {
	cfg    *config.Config
	tuning game.Tuning
	log    *slog.Logger

	screen   *ui.Screen
	renderer *ui.Renderer
	audio    *audio.Player
	layer    *present.Layer

	mode     mode
	helpFrom mode

	menu *nav.Menu

	session   *game.Session
	hold      *ui.HoldTracker
	scoreText string
	winner    game.Side
	over      bool
	prevVY    float64
	events    tickEvents

	owed time.Duration // simulation time not yet ticked
}

// tickEvents collects what the session reported during one Advance
type tickEvents struct {
	hit    bool
	scored bool
}

// New creates an App for the given configuration and validated tuning
func New(cfg *config.Config, tuning game.Tuning, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		cfg:    cfg,
		tuning: tuning,
		log:    logger,
		audio:  audio.Silent(),
		layer:  present.NewLayer(),
	}
}

// Run is the main entry point for the application. It owns the terminal
// until the user quits, ctx is cancelled or a signal arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	// Initialize audio (failures leave the game silent)
	a.audio = audio.Open(a.log)
	defer a.audio.Close()

	return a.run(ctx, screen)
}

// run drives the app on an initialised screen and finalises it on return
func (a *App) run(ctx context.Context, screen *ui.Screen) error {
	a.attach(screen)

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan tcell.Event)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.pumpEvents(ctx, events)
		return nil
	})
	g.Go(func() error {
		defer screen.Fini() // unblocks PollEvent
		defer cancel()
		return a.loop(ctx, events)
	})

	err := g.Wait()
	a.log.Info("app stopped", "err", err)
	return err
}

// attach binds the app to a screen and opens the start screen
func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, game.Vec{X: a.tuning.Width, Y: a.tuning.Height})

	if a.cfg.Mode == config.ModePong {
		a.startPong()
	} else {
		a.startMenu()
	}
}

// pumpEvents forwards screen events until the screen is finalised
func (a *App) pumpEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop is the single writer of all game state
func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.frame(now.Sub(last))
			last = now
		}
	}
}

// frame runs the ticks owed for elapsed wall time, then renders
func (a *App) frame(elapsed time.Duration) {
	a.owed = min(a.owed+elapsed, maxCatchUp*TickDuration)
	for a.owed >= TickDuration {
		a.owed -= TickDuration
		a.step()
	}
	a.render()
}

// step advances whichever simulation is on screen by one tick
func (a *App) step() {
	switch a.mode {
	case modeMenu:
		wasDropped := a.menu.Dropped()
		a.menu.Advance(1)
		if !wasDropped && a.menu.Dropped() {
			a.audio.Play(audio.CueLinksDrop)
		}
		a.layer.Sync(a.menu.Bodies())

	case modePong:
		a.hold.Tick()
		a.events = tickEvents{}
		a.session.Advance(1)
		a.layer.Sync(a.session.Bodies())
		a.detectWallBounce()

		if a.over {
			a.hold.Release()
			a.setMode(modeGameOver)
		}
	}
}

// detectWallBounce plays the wall sound when the ball's vertical direction
// flips without a paddle hit or a serve in the same tick.
func (a *App) detectWallBounce() {
	vy := a.session.BallState().Velocity.Y
	flipped := (a.prevVY > 0 && vy < 0) || (a.prevVY < 0 && vy > 0)
	if flipped && !a.events.hit && !a.events.scored {
		a.audio.Play(audio.CueWallBounce)
	}
	a.prevVY = vy
}

func (a *App) setMode(m mode) {
	if a.mode != m {
		a.log.Debug("mode change", "from", a.mode, "to", m)
	}
	a.mode = m
}

// startMenu builds a fresh nav menu in its own world
func (a *App) startMenu() {
	world := physics.NewWorld(game.Vec{Y: a.tuning.NavGravity})
	a.menu = nav.NewMenu(a.tuning, world, nav.DefaultItems(), nav.Options{Logger: a.log, Seed: a.cfg.Seed})
	a.session = nil

	a.layer.Reset()
	for _, l := range a.menu.Links() {
		a.layer.Bind(l.ID, present.Element{Label: l.Label, Width: l.Width, Height: l.Height})
	}
	a.layer.Sync(a.menu.Bodies())
	a.setMode(modeMenu)
}

// startPong builds a fresh session: new world, zero score
func (a *App) startPong() {
	world := physics.NewWorld(game.Vec{})
	a.over = false
	a.session = game.NewSession(a.tuning, world, game.Options{
		Logger: a.log,
		Seed:   a.cfg.Seed,
		Hooks: game.Hooks{
			OnScore:     a.onScore,
			OnPaddleHit: a.onPaddleHit,
		},
	})
	a.hold = ui.NewHoldTracker(a.session.Input(), ui.HoldTimeout)
	a.scoreText = a.session.Score().String()
	a.menu = nil

	a.layer.Reset()
	for _, b := range a.session.Bodies() {
		a.layer.Bind(b.ID, present.Element{Label: b.Role.String()})
	}
	bodies := a.layer.Sync(a.session.Bodies())
	a.prevVY = a.session.BallState().Velocity.Y
	a.log.Info("pong started", "bodies", len(bodies), "points_to_win", a.cfg.PointsToWin)
	a.setMode(modePong)
}

func (a *App) onScore(sc game.Score, scorer game.Side) {
	a.events.scored = true
	a.scoreText = sc.String()
	a.log.Debug("point", "scorer", scorer, "points", sc.Of(scorer), "needed", a.cfg.PointsToWin)
	a.audio.Play(audio.ScoreCue(scorer))
	if sc.IsGameOver(a.cfg.PointsToWin) {
		a.over = true
		a.winner = sc.Winner(a.cfg.PointsToWin)
		a.log.Info("game over", "winner", a.winner, "score", a.scoreText)
	}
}

func (a *App) onPaddleHit(side game.Side) {
	a.events.hit = true
	a.audio.Play(audio.HitCue(side))
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		switch a.mode {
		case modeMenu:
			return a.handleMenuEvent(ev)
		case modeHelp:
			a.setMode(a.helpFrom)
		case modePong:
			a.handlePongEvent(ev)
		case modeGameOver:
			a.handleGameOverEvent(ev)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}

	return false
}

// handleMenuEvent handles events on the menu screen.
// Returns true if the selected link quits.
func (a *App) handleMenuEvent(ev *tcell.EventKey) bool {
	cmd, idx := ui.KeyToMenuCommand(ev.Key(), ev.Rune())
	switch cmd {
	case ui.MenuNext:
		a.menu.Next()
	case ui.MenuPrev:
		a.menu.Prev()
	case ui.MenuJump:
		a.menu.Select(idx)
	case ui.MenuReset:
		a.menu.Reset()
	case ui.MenuNudge:
		a.menu.Nudge()
	case ui.MenuOpen:
		link, ok := a.menu.Selected()
		if !ok {
			return false
		}
		a.log.Debug("link opened", "action", link.Action)
		switch link.Action {
		case nav.ActionPlay:
			a.startPong()
		case nav.ActionHelp:
			a.helpFrom = modeMenu
			a.setMode(modeHelp)
		case nav.ActionQuit:
			return true
		}
	}
	return false
}

// handlePongEvent handles events during gameplay.
func (a *App) handlePongEvent(ev *tcell.EventKey) {
	if ui.IsMenuKey(ev.Key(), ev.Rune()) {
		a.startMenu()
		return
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'h') {
		a.hold.Release()
		a.helpFrom = modePong
		a.setMode(modeHelp)
		return
	}
	a.hold.Press(ui.KeyToDirection(ev.Key(), ev.Rune()))
}

// handleGameOverEvent handles events on the game over screen.
func (a *App) handleGameOverEvent(ev *tcell.EventKey) {
	switch {
	case ui.IsStartKey(ev.Key()):
		a.startPong()
	case ui.IsMenuKey(ev.Key(), ev.Rune()):
		a.startMenu()
	}
}

// render calls the appropriate renderer method based on the current state.
func (a *App) render() {
	if a.renderer.TooSmall() {
		a.renderer.RenderError(fmt.Sprintf("terminal too small, need %dx%d", ui.MinWidth, ui.MinHeight))
		return
	}
	switch a.mode {
	case modeMenu:
		view := ui.MenuView{Placements: a.layer.Placements(), Dropped: a.menu.Dropped()}
		if link, ok := a.menu.Selected(); ok {
			view.Selected = link.ID
		}
		a.renderer.RenderMenu(view)
	case modeHelp:
		a.renderer.RenderHelp()
	case modePong:
		a.renderer.RenderGame(ui.GameView{
			Placements:  a.layer.Placements(),
			ScoreText:   a.scoreText,
			Tick:        a.session.Tick(),
			PointsToWin: a.cfg.PointsToWin,
		})
	case modeGameOver:
		a.renderer.RenderGameOver(a.session.Score(), a.winner)
	}
}
