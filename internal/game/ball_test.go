package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewBall(t *testing.T) {
	ball := NewBall(5, 10, 800, 600, 20)

	if ball.MinY != 10 || ball.MaxY != 590 {
		t.Errorf("expected vertical bounds [10, 590], got [%f, %f]", ball.MinY, ball.MaxY)
	}
	if ball.LeftExit != -20 || ball.RightExit != 820 {
		t.Errorf("expected exits -20 and 820, got %f and %f", ball.LeftExit, ball.RightExit)
	}
}

func TestBall_Exited(t *testing.T) {
	ball := NewBall(5, 10, 800, 600, 20)

	tests := []struct {
		name     string
		x        float64
		wantSide Side
		wantOut  bool
	}{
		{"centre", 400, 0, false},
		{"on left threshold", -20, 0, false},
		{"on right threshold", 820, 0, false},
		{"past left", -20.5, SidePlayer, true},
		{"past right", 821, SideAI, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, out := ball.Exited(tt.x)
			if out != tt.wantOut {
				t.Fatalf("Exited(%f) out = %v, want %v", tt.x, out, tt.wantOut)
			}
			if out && side != tt.wantSide {
				t.Errorf("Exited(%f) side = %v, want %v", tt.x, side, tt.wantSide)
			}
		})
	}
}

func TestServeVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		right := ServeVelocity(rng, true, 5, 3)
		if right.X != 5 {
			t.Fatalf("expected VX=5 when launching right, got %f", right.X)
		}
		if math.Abs(right.Y) > 3 {
			t.Fatalf("expected |VY| <= 3, got %f", right.Y)
		}

		left := ServeVelocity(rng, false, 5, 3)
		if left.X != -5 {
			t.Fatalf("expected VX=-5 when launching left, got %f", left.X)
		}
		if math.Abs(left.Y) > 3 {
			t.Fatalf("expected |VY| <= 3, got %f", left.Y)
		}
	}
}

func TestSpeed(t *testing.T) {
	// 3-4-5 triangle
	if got := Speed(Vec{X: 3, Y: 4}); got != 5.0 {
		t.Errorf("expected speed=5.0, got %f", got)
	}
}
