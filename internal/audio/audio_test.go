package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/linkpong/internal/game"
)

// drain streams s to the end and returns how many samples it produced
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] != volume && smp[0] != -volume {
				t.Fatalf("unexpected sample value %f", smp[0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestSquareWave_Length(t *testing.T) {
	got := drain(t, squareWave(440, 30*time.Millisecond))
	if want := sampleRate.N(30 * time.Millisecond); got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestCue_StreamerPlaysEveryNote(t *testing.T) {
	for c := range cues {
		want := 0
		for _, n := range cues[c] {
			want += sampleRate.N(n.duration)
		}
		if got := drain(t, c.streamer()); got != want {
			t.Errorf("cue %d: expected %d samples, got %d", c, want, got)
		}
	}
}

func TestCue_Duration(t *testing.T) {
	if got := CueAIScores.duration(); got != 350*time.Millisecond {
		t.Errorf("expected score jingle of 350ms, got %v", got)
	}
	if got := Cue(99).duration(); got != 0 {
		t.Errorf("unknown cue should be silent, got %v", got)
	}
	if Cue(99).streamer() != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestCueForSide(t *testing.T) {
	if HitCue(game.SidePlayer) != CuePlayerHit || HitCue(game.SideAI) != CueAIHit {
		t.Error("HitCue picked the wrong side")
	}
	if ScoreCue(game.SidePlayer) != CuePlayerScores || ScoreCue(game.SideAI) != CueAIScores {
		t.Error("ScoreCue picked the wrong side")
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	if p.Enabled() {
		t.Fatal("silent player should not be enabled")
	}
	// must not touch the speaker
	p.Play(CuePlayerHit)
	p.Close()

	var nilPlayer *Player
	if nilPlayer.Enabled() {
		t.Error("nil player should not be enabled")
	}
}
