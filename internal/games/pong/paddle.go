package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a keyboard-controlled paddle occupying a fixed horizontal slot.
type Paddle struct {
	Player  core.PlayerID
	X, Y    float64 // Centre position; only Y changes after spawn
	W, H    float64
	Binding core.Binding
}

// SpawnPaddle creates the given player's paddle at its slot, vertically centred.
func SpawnPaddle(player core.PlayerID, s *core.Settings) Paddle {
	return Paddle{
		Player:  player,
		X:       s.PaddleX(player),
		Y:       0,
		W:       s.PaddleWidth,
		H:       s.PaddleHeight,
		Binding: s.Binding(player),
	}
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(core.V(p.X, p.Y), p.W, p.H)
}

// State returns the renderable paddle state.
func (p *Paddle) State() core.PaddleState {
	return core.PaddleState{Player: p.Player, Pos: core.V(p.X, p.Y), W: p.W, H: p.H}
}

// MovePaddle applies one frame of input to the paddle.
// Up and down are independent: holding both cancels out.
func MovePaddle(p *Paddle, keys core.KeyState, dt float64, s *core.Settings) {
	if keys != nil {
		if keys.Pressed(p.Binding.Up) {
			p.Y += s.PaddleSpeed * dt
		}
		if keys.Pressed(p.Binding.Down) {
			p.Y -= s.PaddleSpeed * dt
		}
	}
	p.Y = ClampPaddle(p.Y, s)
}

// ClampPaddle keeps a paddle centre inside the playfield.
func ClampPaddle(y float64, s *core.Settings) float64 {
	lo, hi := s.PaddleBounds()
	return core.ClampF(y, lo, hi)
}
