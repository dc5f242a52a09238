package rigid

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Object tags in the collision space.
const (
	tagWall   = "wall"
	tagPaddle = "paddle"
	tagBall   = "ball"
)

// frame converts between logical playfield coordinates (centred) and
// collision-space coordinates (origin at a corner, all positive).
type frame struct {
	origin core.Vec2
}

// newSpace builds a collision space covering the playfield plus a margin
// above and below for the walls and a ball overlapping them.
func newSpace(s *core.Settings) (*resolv.Space, frame) {
	margin := s.RigidWallThickness + 2*s.RigidBallRadius
	w := int(math.Ceil(s.Width))
	h := int(math.Ceil(s.Height + 2*margin))
	cell := max(1, s.RigidCellSize)

	f := frame{origin: core.V(s.HalfWidth(), s.HalfHeight()+margin)}
	return resolv.NewSpace(w, h, cell, cell), f
}

// newObject creates a space object covering the given logical box.
func (f frame) newObject(box core.Box, tag string) *resolv.Object {
	return resolv.NewObject(box.Left()+f.origin.X, box.Bottom()+f.origin.Y, box.W, box.H, tag)
}

// place moves an object so it covers the given logical box.
func (f frame) place(obj *resolv.Object, box core.Box) {
	obj.X = box.Left() + f.origin.X
	obj.Y = box.Bottom() + f.origin.Y
	obj.W = box.W
	obj.H = box.H
	obj.Update()
}

// box returns the logical box an object covers.
func (f frame) box(obj *resolv.Object) core.Box {
	return core.NewBox(
		core.V(obj.X+obj.W*0.5-f.origin.X, obj.Y+obj.H*0.5-f.origin.Y),
		obj.W, obj.H,
	)
}

// contact returns the separation normal (pointing from the box toward the
// circle centre) and penetration depth of a circle overlapping a box.
func contact(center core.Vec2, radius float64, box core.Box) (normal core.Vec2, depth float64, ok bool) {
	closest := box.ClosestPoint(center)
	d := center.Sub(closest)
	dist := d.Len()

	if dist > 0 {
		if dist >= radius {
			return core.Vec2{}, 0, false
		}
		return d.Scale(1 / dist), radius - dist, true
	}

	// Centre inside the box: push out along the shallowest side.
	left := center.X - box.Left()
	right := box.Right() - center.X
	bottom := center.Y - box.Bottom()
	top := box.Top() - center.Y

	normal, depth = core.V(-1, 0), left
	if right < depth {
		normal, depth = core.V(1, 0), right
	}
	if bottom < depth {
		normal, depth = core.V(0, -1), bottom
	}
	if top < depth {
		normal, depth = core.V(0, 1), top
	}
	return normal, depth + radius, true
}
