package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/core"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Window: WindowConfig{
			Title:    "Pong",
			Width:    700,
			Height:   500,
			TickRate: 60,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 150,
			Speed:  200,
			Inset:  20,
		},
		Ball: BallConfig{
			Size:     25,
			Velocity: VelocityConfig{X: 100, Y: 0},
		},
		Physics: PhysicsConfig{
			HitTest:       string(core.HitTestAABB),
			ApproachOnly:  false,
			ReboundSpread: 100,
		},
		Rigid: RigidConfig{
			BallRadius:    25,
			WallThickness: 6,
			Restitution:   1,
			CellSize:      10,
		},
		Controls: ControlsConfig{
			Player1: core.Binding{Up: "w", Down: "s"},
			Player2: core.Binding{Up: "up", Down: "down"},
		},
		TUI: TUIConfig{
			KeyHoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
