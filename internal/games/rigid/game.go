// Package rigid implements Pong on top of a rigid-body collision space.
// Walls are fixed bodies, paddles are kinematic bodies driven by the shared
// paddle controller and the ball is a circle bouncing with restitution.
package rigid

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// ID is the registry identifier of the rigid-body variant.
const ID = "rigid"

// Game implements Pong with circle-vs-box contact resolution.
type Game struct {
	settings *core.Settings
	space    *resolv.Space
	frame    frame

	paddles    [2]pong.Paddle
	paddleObjs [2]*resolv.Object
	ball       pong.Ball
	ballObj    *resolv.Object
	stats      core.Stats
}

// New creates a rigid-body simulation with both paddles and the ball spawned.
func New(settings *core.Settings) *Game {
	g := &Game{settings: settings}
	g.Reset(0)
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return "Pong (rigid body)"
}

// Reset rebuilds the collision space and spawns all bodies.
// The rigid variant has no randomness, so the seed is unused.
func (g *Game) Reset(_ int64) {
	s := g.settings
	g.space, g.frame = newSpace(s)

	wallSize := core.V(s.Width, s.RigidWallThickness)
	for _, y := range []float64{s.HalfHeight(), -s.HalfHeight()} {
		wall := core.NewBox(core.V(0, y), wallSize.X, wallSize.Y)
		g.space.Add(g.frame.newObject(wall, tagWall))
	}

	for i, player := range []core.PlayerID{core.Player1, core.Player2} {
		g.paddles[i] = pong.SpawnPaddle(player, s)
		g.paddleObjs[i] = g.frame.newObject(g.paddles[i].Box(), tagPaddle)
		g.space.Add(g.paddleObjs[i])
	}

	g.ball = pong.SpawnBall(s)
	g.ballObj = g.frame.newObject(g.ballBox(), tagBall)
	g.space.Add(g.ballObj)

	g.stats = core.Stats{}
}

// Step advances the simulation by one frame: kinematic paddles first,
// then the ball with contact resolution against walls and paddles.
func (g *Game) Step(keys core.KeyState, dt float64) core.StepResult {
	for i := range g.paddles {
		pong.MovePaddle(&g.paddles[i], keys, dt, g.settings)
		g.frame.place(g.paddleObjs[i], g.paddles[i].Box())
	}

	g.ball.Integrate(dt)
	g.frame.place(g.ballObj, g.ballBox())

	result := g.resolveContacts()
	if result.WallBounce {
		g.stats.WallBounces++
	}
	if result.PaddleHit {
		g.stats.PaddleHits++
	}
	g.stats.Frames++
	return result
}

// resolveContacts pushes the ball out of every body it penetrates and
// reflects its velocity along the contact normal.
func (g *Game) resolveContacts() core.StepResult {
	var result core.StepResult

	collision := g.ballObj.Check(0, 0, tagWall, tagPaddle)
	if collision == nil {
		return result
	}

	radius := g.settings.RigidBallRadius
	e := g.settings.RigidRestitution
	for _, obj := range collision.Objects {
		normal, depth, ok := contact(g.ball.Pos, radius, g.frame.box(obj))
		if !ok {
			continue
		}

		g.ball.Pos = g.ball.Pos.Add(normal.Scale(depth))

		vn := g.ball.Vel.Dot(normal)
		if vn >= 0 {
			continue
		}
		g.ball.Vel = g.ball.Vel.Sub(normal.Scale((1 + e) * vn))

		if obj.HasTags(tagWall) {
			result.WallBounce = true
		} else {
			result.PaddleHit = true
		}
	}

	g.frame.place(g.ballObj, g.ballBox())
	return result
}

func (g *Game) ballBox() core.Box {
	d := 2 * g.settings.RigidBallRadius
	return core.NewBox(g.ball.Pos, d, d)
}

// Ball returns a copy of the ball.
func (g *Game) Ball() pong.Ball {
	return g.ball
}

// SetBall overrides the ball state.
func (g *Game) SetBall(b pong.Ball) {
	g.ball = b
	g.frame.place(g.ballObj, g.ballBox())
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		Ball: core.BallState{
			Pos:    g.ball.Pos,
			Vel:    g.ball.Vel,
			Radius: g.settings.RigidBallRadius,
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
	pong.DrawSnapshot(dst, g.Snapshot(), g.settings, g.Title())
}

func init() {
	registry.Register(ID, func(settings *core.Settings) registry.Simulator {
		return New(settings)
	})
}
