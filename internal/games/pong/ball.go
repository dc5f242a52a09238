package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Rand is the random source used for paddle rebounds.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Seeder is implemented by sources that Reset can reseed.
type Seeder interface {
	Seed(seed int64)
}

// Ball is the freely moving ball. Velocity is in units per second.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// SpawnBall creates the ball at the centre with the configured velocity.
func SpawnBall(s *core.Settings) Ball {
	return Ball{Pos: core.V(0, 0), Vel: s.BallVelocity}
}

// Integrate advances the ball position by one frame.
func (b *Ball) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Box returns the ball's bounding box.
func (b *Ball) Box(s *core.Settings) core.Box {
	return core.NewBox(b.Pos, s.BallSize, s.BallSize)
}

// ReflectWalls flips the vertical velocity when the ball crosses the top or
// bottom edge. The ball is not pushed back inside; the reversed velocity
// brings it back on the following frames.
func ReflectWalls(b *Ball, s *core.Settings) bool {
	if math.Abs(b.Pos.Y)+s.BallSize*0.5 > s.HalfHeight() {
		b.Vel.Y = -b.Vel.Y
		return true
	}
	return false
}

// ReflectPaddles bounces the ball off any paddle it overlaps: the velocity is
// reversed and the vertical component is replaced by a random value in
// [-ReboundSpread, ReboundSpread].
func ReflectPaddles(b *Ball, paddles []Paddle, s *core.Settings, rng Rand) bool {
	hit := false
	for i := range paddles {
		p := &paddles[i]
		if !Touches(b, p, s) {
			continue
		}
		if s.ApproachOnly && core.Sign(b.Vel.X) != core.Sign(p.X-b.Pos.X) {
			continue
		}
		b.Vel = b.Vel.Scale(-1)
		b.Vel.Y = Rebound(rng, s.ReboundSpread)
		hit = true
	}
	return hit
}

// Touches reports whether the ball overlaps the paddle under the configured hit test.
func Touches(b *Ball, p *Paddle, s *core.Settings) bool {
	if s.HitTest == core.HitTestLegacy {
		return legacyTouches(b, p, s)
	}
	return b.Box(s).Overlaps(p.Box())
}

// legacyTouches keeps the historical predicate, whose last comparison uses
// the paddle's x-coordinate. The left paddle then ignores the ball's
// lower-edge test and the right paddle practically never registers a hit.
func legacyTouches(b *Ball, p *Paddle, s *core.Settings) bool {
	r := s.BallSize * 0.5
	return b.Pos.X-r < p.X+p.W*0.5 &&
		b.Pos.Y-r < p.Y+p.H*0.5 &&
		b.Pos.X+r > p.X-p.W*0.5 &&
		b.Pos.Y+r > p.X-p.H*0.5
}

// Rebound draws a vertical rebound speed uniformly from [-spread, spread].
func Rebound(rng Rand, spread float64) float64 {
	return -spread + 2*spread*rng.Float64()
}
