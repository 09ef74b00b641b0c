package audio

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/linkpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Cue is a sound effect
type Cue int

const (
	CuePlayerHit Cue = iota
	CueAIHit
	CueWallBounce
	CuePlayerScores
	CueAIScores
	CueLinksDrop
)

type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue][]note{
	// High-pitched short beep; the AI answers a fifth lower
	CuePlayerHit: {{880, 50 * time.Millisecond}},
	CueAIHit:     {{587, 50 * time.Millisecond}},
	// Medium-pitched short beep
	CueWallBounce: {{440, 30 * time.Millisecond}},
	// Rising for a point won, falling for a point lost
	CuePlayerScores: {{330, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {660, 150 * time.Millisecond}},
	CueAIScores:     {{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {330, 150 * time.Millisecond}},
	CueLinksDrop:    {{110, 80 * time.Millisecond}},
}

// HitCue returns the paddle hit sound for a side
func HitCue(side game.Side) Cue {
	if side == game.SidePlayer {
		return CuePlayerHit
	}
	return CueAIHit
}

// ScoreCue returns the sound for a point won by scorer
func ScoreCue(scorer game.Side) Cue {
	if scorer == game.SidePlayer {
		return CuePlayerScores
	}
	return CueAIScores
}

// Player plays cues on the speaker. A Player whose speaker failed to open
// stays silent.
type Player struct {
	enabled bool
}

// Open initialises the speaker. Failure is logged and yields a silent
// player: the game works without sound.
func Open(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// Silent returns a player that never makes a sound
func Silent() *Player {
	return &Player{}
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play queues a cue without blocking
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	s := c.streamer()
	if s == nil {
		return
	}
	speaker.Play(s)
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}

// streamer renders a cue's notes back to back
func (c Cue) streamer() beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = squareWave(n.freq, n.duration)
	}
	return beep.Seq(parts...)
}

// duration is how long a cue plays
func (c Cue) duration() time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.duration
	}
	return d
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			// Square wave: positive or negative based on phase
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
