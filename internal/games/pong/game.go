// Package pong implements the classic two-paddle Pong simulation.
// Collision detection and velocity reflection are done by hand on
// axis-aligned boxes; there is no scoring and no opponent AI.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// ID is the registry identifier of the classic variant.
const ID = "classic"

// Game implements the classic Pong simulation.
type Game struct {
	settings *core.Settings
	paddles  [2]Paddle
	ball     Ball
	rng      Rand
	injected bool // rng came from NewWithRand
	stats    core.Stats
}

// New creates a classic simulation spawned with a fixed seed.
// Platforms call Reset with their own seed before the first frame.
func New(settings *core.Settings) *Game {
	g := &Game{settings: settings}
	g.Reset(1)
	return g
}

// NewWithRand creates a classic simulation drawing rebounds from rng.
// Reset keeps rng and reseeds it when it implements Seeder.
func NewWithRand(settings *core.Settings, rng Rand) *Game {
	g := &Game{settings: settings, rng: rng, injected: true}
	g.spawn()
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return "Pong (classic)"
}

// Reset spawns both paddles and the ball and reseeds the rebound source.
func (g *Game) Reset(seed int64) {
	if !g.injected {
		g.rng = rand.New(rand.NewSource(seed))
	} else if s, ok := g.rng.(Seeder); ok {
		s.Seed(seed)
	}
	g.spawn()
}

func (g *Game) spawn() {
	g.paddles = [2]Paddle{
		SpawnPaddle(core.Player1, g.settings),
		SpawnPaddle(core.Player2, g.settings),
	}
	g.ball = SpawnBall(g.settings)
	g.stats = core.Stats{}
}

// Step advances the game by one frame: paddles first, then the ball.
func (g *Game) Step(keys core.KeyState, dt float64) core.StepResult {
	for i := range g.paddles {
		MovePaddle(&g.paddles[i], keys, dt, g.settings)
	}

	g.ball.Integrate(dt)

	var result core.StepResult
	if ReflectWalls(&g.ball, g.settings) {
		result.WallBounce = true
		g.stats.WallBounces++
	}
	if ReflectPaddles(&g.ball, g.paddles[:], g.settings, g.rng) {
		result.PaddleHit = true
		g.stats.PaddleHits++
	}

	g.stats.Frames++
	return result
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// SetBall overrides the ball state.
func (g *Game) SetBall(b Ball) {
	g.ball = b
}

// Paddle returns a copy of the given player's paddle.
func (g *Game) Paddle(p core.PlayerID) Paddle {
	return g.paddles[p-core.Player1]
}

// SetPaddleY moves the given player's paddle, clamped into the playfield.
func (g *Game) SetPaddleY(p core.PlayerID, y float64) {
	g.paddles[p-core.Player1].Y = ClampPaddle(y, g.settings)
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		Ball: core.BallState{
			Pos:    g.ball.Pos,
			Vel:    g.ball.Vel,
			Radius: g.settings.BallSize * 0.5,
		},
		Paddles: [2]core.PaddleState{
			g.paddles[0].State(),
			g.paddles[1].State(),
		},
		Stats: g.stats,
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	DrawSnapshot(dst, g.Snapshot(), g.settings, g.Title())
}

// Register the variant with the registry
func init() {
	registry.Register(ID, func(settings *core.Settings) registry.Simulator {
		return New(settings)
	})
}
