package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/linkpong/internal/config"
	"github.com/diegok/linkpong/internal/game"
	"github.com/diegok/linkpong/internal/ui"
)

func newTestApp(t *testing.T, cfg *config.Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	if cfg.PointsToWin == 0 {
		cfg.PointsToWin = config.DefaultPoints
	}
	if cfg.Seed == 0 {
		cfg.Seed = 11
	}
	a := New(cfg, game.DefaultTuning(), nil)
	a.attach(ui.NewScreen(sim))
	return a, sim
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_StartsInMenu(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModeMenu})

	if a.mode != modeMenu {
		t.Fatalf("expected menu mode, got %v", a.mode)
	}
	if a.layer.Len() != 3 {
		t.Errorf("expected 3 bound links, got %d", a.layer.Len())
	}
	if len(a.layer.Placements()) != 3 {
		t.Errorf("expected 3 placements after start, got %d", len(a.layer.Placements()))
	}
}

func TestApp_StartsInPong(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModePong})

	if a.mode != modePong {
		t.Fatalf("expected pong mode, got %v", a.mode)
	}
	if a.scoreText != "Player: 0 | AI: 0" {
		t.Errorf("unexpected score text %q", a.scoreText)
	}
	if a.layer.Len() != 3 {
		t.Errorf("expected paddles and ball bound, got %d", a.layer.Len())
	}
}

func TestApp_MenuPlayOpensPong(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModeMenu})

	if a.handleEvent(key(tcell.KeyEnter)) {
		t.Fatal("play should not quit")
	}
	if a.mode != modePong || a.session == nil {
		t.Fatalf("expected pong to start, got mode %v", a.mode)
	}

	if a.handleEvent(runeKey('m')) {
		t.Fatal("menu key should not quit")
	}
	if a.mode != modeMenu || a.menu == nil {
		t.Errorf("expected back in the menu, got %v", a.mode)
	}
}

func TestApp_MenuHelpAndBack(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModeMenu})

	a.handleEvent(runeKey('2'))
	a.handleEvent(key(tcell.KeyEnter))
	if a.mode != modeHelp {
		t.Fatalf("expected help, got %v", a.mode)
	}

	a.handleEvent(runeKey('x'))
	if a.mode != modeMenu {
		t.Errorf("expected any key to return to the menu, got %v", a.mode)
	}
}

func TestApp_MenuQuitLink(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModeMenu})

	a.handleEvent(key(tcell.KeyLeft)) // wraps to the last link
	if !a.handleEvent(key(tcell.KeyEnter)) {
		t.Error("quit link should quit")
	}
}

func TestApp_QuitKeyAlwaysQuits(t *testing.T) {
	for _, m := range []string{config.ModeMenu, config.ModePong} {
		a, _ := newTestApp(t, &config.Config{Mode: m})
		if !a.handleEvent(runeKey('q')) {
			t.Errorf("%s: 'q' should quit", m)
		}
	}
}

func TestApp_PaddleKeyHoldsThenReleases(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModePong})

	a.handleEvent(key(tcell.KeyUp))
	if got := a.session.Input().Held(); got != game.DirUp {
		t.Fatalf("expected up held, got %v", got)
	}

	for range ui.HoldTimeout {
		a.step()
	}
	if got := a.session.Input().Held(); got != game.DirNone {
		t.Errorf("expected key released after the hold timeout, got %v", got)
	}
}

func TestApp_FrameRunsOwedTicks(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModePong})

	a.frame(3 * TickDuration)
	if got := a.session.Tick(); got != 3 {
		t.Errorf("expected 3 ticks, got %d", got)
	}

	a.frame(TickDuration / 2)
	if got := a.session.Tick(); got != 3 {
		t.Errorf("expected half a tick to wait, got %d", got)
	}
	a.frame(TickDuration / 2)
	if got := a.session.Tick(); got != 4 {
		t.Errorf("expected the halves to add up to a tick, got %d", got)
	}

	a.frame(10 * time.Second)
	if got := a.session.Tick(); got != 4+maxCatchUp {
		t.Errorf("expected catch-up capped at %d ticks, got %d", maxCatchUp, got-4)
	}
}

func TestApp_GameOverAndRematch(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModePong, PointsToWin: 1})

	for i := 0; i < 20000 && a.mode == modePong; i++ {
		a.step()
	}
	if a.mode != modeGameOver {
		t.Fatalf("expected game over within 20000 ticks, still %v", a.mode)
	}
	sc := a.session.Score()
	if sc.Player+sc.AI != 1 {
		t.Errorf("expected exactly one point, got %v", sc)
	}
	if a.winner != sc.Winner(1) {
		t.Errorf("winner %v does not match score %v", a.winner, sc)
	}

	// game over freezes the simulation
	tick := a.session.Tick()
	a.step()
	if a.session.Tick() != tick {
		t.Error("session should not advance on the game over screen")
	}

	a.handleEvent(key(tcell.KeyEnter))
	if a.mode != modePong {
		t.Fatalf("expected rematch, got %v", a.mode)
	}
	if a.session.Score() != (game.Score{}) {
		t.Errorf("rematch should reset the score, got %v", a.session.Score())
	}
}

func TestApp_MenuLinksDrop(t *testing.T) {
	a, _ := newTestApp(t, &config.Config{Mode: config.ModeMenu})

	for range int(a.tuning.NavDropDelay) + 30 {
		a.step()
	}
	if !a.menu.Dropped() {
		t.Fatal("links should have dropped")
	}
	for _, p := range a.layer.Placements() {
		if p.Center().Y <= 50 {
			t.Errorf("%s should be falling, centre y=%f", p.Element.Label, p.Center().Y)
		}
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)

	a := New(&config.Config{Mode: config.ModeMenu, PointsToWin: 3, Seed: 5}, game.DefaultTuning(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.run(ctx, ui.NewScreen(sim)) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after the context was cancelled")
	}
}

func TestApp_RenderTooSmallShowsError(t *testing.T) {
	a, sim := newTestApp(t, &config.Config{Mode: config.ModePong})
	sim.SetSize(20, 6)

	a.render()

	cells, w, h := sim.GetContents()
	var text []rune
	for i := 0; i < w*h; i++ {
		if len(cells[i].Runes) > 0 {
			text = append(text, cells[i].Runes[0])
		}
	}
	if !strings.Contains(string(text), "ERROR") {
		t.Error("expected the too small error screen")
	}
}
