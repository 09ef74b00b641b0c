package game

import (
	"testing"
)

func TestNewPaddle(t *testing.T) {
	paddle := NewPaddle(3, SideAI, 770, 20, 100, 600)

	if paddle.ID != 3 {
		t.Errorf("expected ID=3, got %d", paddle.ID)
	}
	if paddle.Side != SideAI {
		t.Errorf("expected Side=SideAI, got %v", paddle.Side)
	}
	if paddle.X != 770 {
		t.Errorf("expected X=770, got %f", paddle.X)
	}
	if paddle.TopEdge != 50 {
		t.Errorf("expected TopEdge=50, got %f", paddle.TopEdge)
	}
	if paddle.BottomEdge != 550 {
		t.Errorf("expected BottomEdge=550, got %f", paddle.BottomEdge)
	}
	if paddle.Role() != RoleAI {
		t.Errorf("expected RoleAI, got %v", paddle.Role())
	}
}

func TestPaddle_Clamp(t *testing.T) {
	paddle := NewPaddle(1, SidePlayer, 30, 20, 100, 600)

	tests := []struct {
		name        string
		y           float64
		want        float64
		wantClamped bool
	}{
		{"centre", 300, 300, false},
		{"on top edge", 50, 50, false},
		{"on bottom edge", 550, 550, false},
		{"above top", 12, 50, true},
		{"below bottom", 590, 550, true},
		{"far outside", -1000, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := paddle.Clamp(tt.y)
			if got != tt.want || clamped != tt.wantClamped {
				t.Errorf("Clamp(%f) = (%f, %v), want (%f, %v)", tt.y, got, clamped, tt.want, tt.wantClamped)
			}
		})
	}
}

func TestSide(t *testing.T) {
	if SidePlayer.Outward() != 1 {
		t.Errorf("player paddle should send the ball right")
	}
	if SideAI.Outward() != -1 {
		t.Errorf("ai paddle should send the ball left")
	}
	if SidePlayer.Other() != SideAI || SideAI.Other() != SidePlayer {
		t.Errorf("Other should swap sides")
	}
}
