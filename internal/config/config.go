// Package config provides YAML-based configuration loading for the pong
// simulation and its frontends.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PongConfig contains all configuration for the simulation and frontends.
type PongConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Rigid    RigidConfig    `yaml:"rigid"`
	Controls ControlsConfig `yaml:"controls"`
	TUI      TUIConfig      `yaml:"tui"`
}

// WindowConfig defines the playfield and native window.
type WindowConfig struct {
	Title    string  `yaml:"title"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Inset  float64 `yaml:"inset"`
}

// BallConfig defines the ball size and initial velocity.
type BallConfig struct {
	Size     float64        `yaml:"size"`
	Velocity VelocityConfig `yaml:"velocity"`
}

// VelocityConfig is a 2D velocity in units per second.
type VelocityConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig defines collision behaviour of the classic variant.
type PhysicsConfig struct {
	HitTest       string  `yaml:"hit_test"`
	ApproachOnly  bool    `yaml:"approach_only"`
	ReboundSpread float64 `yaml:"rebound_spread"`
}

// RigidConfig defines the rigid-body variant.
type RigidConfig struct {
	BallRadius    float64 `yaml:"ball_radius"`
	WallThickness float64 `yaml:"wall_thickness"`
	Restitution   float64 `yaml:"restitution"`
	CellSize      int     `yaml:"cell_size"`
}

// ControlsConfig holds the key bindings of both players.
type ControlsConfig struct {
	Player1 core.Binding `yaml:"player1"`
	Player2 core.Binding `yaml:"player2"`
}

// TUIConfig defines terminal frontend behaviour.
type TUIConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// Validate reports the first invalid value in the configuration.
func (c PongConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"window.tick_rate", float64(c.Window.TickRate)},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.size", c.Ball.Size},
		{"rigid.ball_radius", c.Rigid.BallRadius},
		{"rigid.wall_thickness", c.Rigid.WallThickness},
		{"rigid.cell_size", float64(c.Rigid.CellSize)},
		{"tui.key_hold_ms", float64(c.TUI.KeyHoldMS)},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	if c.Paddle.Height > c.Window.Height {
		return fmt.Errorf("config: paddle.height %v exceeds window.height %v", c.Paddle.Height, c.Window.Height)
	}
	if c.Paddle.Inset < 0 || c.Paddle.Inset > c.Window.Width/2 {
		return fmt.Errorf("config: paddle.inset %v outside [0, %v]", c.Paddle.Inset, c.Window.Width/2)
	}
	if c.Physics.ReboundSpread < 0 {
		return fmt.Errorf("config: physics.rebound_spread must not be negative, got %v", c.Physics.ReboundSpread)
	}
	switch core.HitTest(c.Physics.HitTest) {
	case core.HitTestAABB, core.HitTestLegacy:
	default:
		return fmt.Errorf("config: unknown physics.hit_test %q", c.Physics.HitTest)
	}
	if c.Rigid.Restitution < 0 || c.Rigid.Restitution > 1 {
		return fmt.Errorf("config: rigid.restitution %v outside [0, 1]", c.Rigid.Restitution)
	}

	return c.Controls.validate()
}

func (c ControlsConfig) validate() error {
	seen := make(map[string]string, 4)
	keys := []struct{ name, key string }{
		{"controls.player1.up", c.Player1.Up},
		{"controls.player1.down", c.Player1.Down},
		{"controls.player2.up", c.Player2.Up},
		{"controls.player2.down", c.Player2.Down},
	}
	for _, k := range keys {
		key := core.NormalizeKey(k.key)
		if key == "" {
			return fmt.Errorf("config: %s is empty", k.name)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("config: %s and %s are both bound to %q", other, k.name, key)
		}
		seen[key] = k.name
	}
	return nil
}

// Settings converts the configuration into the simulation settings.
func (c PongConfig) Settings() core.Settings {
	return core.Settings{
		Width:              c.Window.Width,
		Height:             c.Window.Height,
		PaddleWidth:        c.Paddle.Width,
		PaddleHeight:       c.Paddle.Height,
		PaddleSpeed:        c.Paddle.Speed,
		PaddleInset:        c.Paddle.Inset,
		BallSize:           c.Ball.Size,
		BallVelocity:       core.V(c.Ball.Velocity.X, c.Ball.Velocity.Y),
		ReboundSpread:      c.Physics.ReboundSpread,
		HitTest:            core.HitTest(c.Physics.HitTest),
		ApproachOnly:       c.Physics.ApproachOnly,
		RigidBallRadius:    c.Rigid.BallRadius,
		RigidWallThickness: c.Rigid.WallThickness,
		RigidRestitution:   c.Rigid.Restitution,
		RigidCellSize:      c.Rigid.CellSize,
		Player1:            normalized(c.Controls.Player1),
		Player2:            normalized(c.Controls.Player2),
	}
}

func normalized(b core.Binding) core.Binding {
	return core.Binding{Up: core.NormalizeKey(b.Up), Down: core.NormalizeKey(b.Down)}
}
