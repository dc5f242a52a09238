package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestSpawnPaddles(t *testing.T) {
	s := core.DefaultSettings()

	p1 := SpawnPaddle(core.Player1, &s)
	p2 := SpawnPaddle(core.Player2, &s)

	if p1.X != -330 || p1.Y != 0 {
		t.Errorf("Player1 paddle at (%v, %v), expected (-330, 0)", p1.X, p1.Y)
	}
	if p2.X != 330 || p2.Y != 0 {
		t.Errorf("Player2 paddle at (%v, %v), expected (330, 0)", p2.X, p2.Y)
	}
	if p1.Binding.Up != "w" || p1.Binding.Down != "s" {
		t.Errorf("Player1 binding = %+v, expected w/s", p1.Binding)
	}
	if p2.W != 10 || p2.H != 150 {
		t.Errorf("Paddle size = %vx%v, expected 10x150", p2.W, p2.H)
	}
}

func TestMovePaddleUpDown(t *testing.T) {
	s := core.DefaultSettings()
	lo, hi := s.PaddleBounds()

	starts := []float64{-175, -100, 0, 42.5, 174.9, 175}
	steps := []float64{0, 1.0 / 60.0, 0.1, 0.5, 3}

	for _, y0 := range starts {
		for _, dt := range steps {
			up := SpawnPaddle(core.Player1, &s)
			up.Y = y0
			MovePaddle(&up, core.Keys("w"), dt, &s)
			if up.Y < y0 {
				t.Errorf("up from %v with dt=%v moved down to %v", y0, dt, up.Y)
			}
			if dt > 0 && up.Y == y0 && up.Y != hi {
				t.Errorf("up from %v with dt=%v did not move and is not clamped", y0, dt)
			}

			down := SpawnPaddle(core.Player2, &s)
			down.Y = y0
			MovePaddle(&down, core.Keys("down"), dt, &s)
			if down.Y > y0 {
				t.Errorf("down from %v with dt=%v moved up to %v", y0, dt, down.Y)
			}
			if dt > 0 && down.Y == y0 && down.Y != lo {
				t.Errorf("down from %v with dt=%v did not move and is not clamped", y0, dt)
			}
		}
	}
}

func TestMovePaddleSpeed(t *testing.T) {
	s := core.DefaultSettings()
	p := SpawnPaddle(core.Player1, &s)

	MovePaddle(&p, core.Keys("w"), 0.25, &s)
	if p.Y != 50 {
		t.Errorf("After 0.25s up at 200 u/s, Y = %v, expected 50", p.Y)
	}

	MovePaddle(&p, core.Keys("s"), 0.5, &s)
	if p.Y != -50 {
		t.Errorf("After 0.5s down, Y = %v, expected -50", p.Y)
	}
}

func TestMovePaddleBothKeysCancel(t *testing.T) {
	s := core.DefaultSettings()
	p := SpawnPaddle(core.Player1, &s)
	p.Y = 30

	MovePaddle(&p, core.Keys("w", "s"), 0.2, &s)
	if p.Y != 30 {
		t.Errorf("Both keys held should cancel, Y = %v, expected 30", p.Y)
	}
}

func TestMovePaddleIgnoresOtherBinding(t *testing.T) {
	s := core.DefaultSettings()
	p1 := SpawnPaddle(core.Player1, &s)

	MovePaddle(&p1, core.Keys("up"), 0.2, &s)
	if p1.Y != 0 {
		t.Errorf("Player1 should ignore Player2 keys, Y = %v", p1.Y)
	}

	MovePaddle(&p1, nil, 0.2, &s)
	if p1.Y != 0 {
		t.Errorf("nil key state should not move the paddle, Y = %v", p1.Y)
	}
}

func TestClampPaddle(t *testing.T) {
	s := core.DefaultSettings()

	tests := []struct {
		y, expected float64
	}{
		{0, 0},
		{175, 175},
		{176, 175},
		{1e6, 175},
		{-175, -175},
		{-400, -175},
		{-174.5, -174.5},
	}

	for _, tc := range tests {
		got := ClampPaddle(tc.y, &s)
		if got != tc.expected {
			t.Errorf("ClampPaddle(%v) = %v, expected %v", tc.y, got, tc.expected)
		}
		if got < -215 || got > 215 {
			t.Errorf("ClampPaddle(%v) = %v, outside [-215, 215]", tc.y, got)
		}
		if again := ClampPaddle(got, &s); again != got {
			t.Errorf("ClampPaddle not idempotent: %v then %v", got, again)
		}
	}
}
