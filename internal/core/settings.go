package core

// HitTest selects the ball/paddle overlap predicate used by the classic variant.
type HitTest string

const (
	// HitTestAABB compares ball and paddle boxes on both axes.
	HitTestAABB HitTest = "aabb"
	// HitTestLegacy reproduces the historical predicate that compares the ball's
	// lower edge against the paddle's x-coordinate instead of its y-coordinate.
	HitTestLegacy HitTest = "legacy"
)

// Settings is the immutable simulation configuration shared by every per-frame
// routine. It is built once at startup and passed by pointer; nothing mutates it.
type Settings struct {
	Width  float64 // Playfield width in logical units
	Height float64 // Playfield height in logical units

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64 // Units per second
	PaddleInset  float64 // Distance of the paddle centre from the side edge

	BallSize      float64 // Ball box edge (classic), diameter for drawing
	BallVelocity  Vec2    // Initial ball velocity, units per second
	ReboundSpread float64 // Paddle rebounds draw vy from [-spread, spread]

	HitTest      HitTest
	ApproachOnly bool // Only reflect off a paddle while moving toward it

	// Rigid-body variant
	RigidBallRadius    float64
	RigidWallThickness float64
	RigidRestitution   float64
	RigidCellSize      int

	Player1 Binding
	Player2 Binding
}

// HalfWidth returns Width/2.
func (s *Settings) HalfWidth() float64 { return s.Width * 0.5 }

// HalfHeight returns Height/2.
func (s *Settings) HalfHeight() float64 { return s.Height * 0.5 }

// PaddleBounds returns the range the paddle centre is allowed to occupy.
func (s *Settings) PaddleBounds() (lo, hi float64) {
	return -s.Height*0.5 + s.PaddleHeight*0.5, s.Height*0.5 - s.PaddleHeight*0.5
}

// PaddleX returns the fixed horizontal slot of the given player's paddle.
func (s *Settings) PaddleX(p PlayerID) float64 {
	if p == Player1 {
		return -s.Width*0.5 + s.PaddleInset
	}
	return s.Width*0.5 - s.PaddleInset
}

// Binding returns the key binding of the given player.
func (s *Settings) Binding(p PlayerID) Binding {
	if p == Player1 {
		return s.Player1
	}
	return s.Player2
}

// DefaultSettings mirrors the embedded default configuration.
func DefaultSettings() Settings {
	return Settings{
		Width:              700,
		Height:             500,
		PaddleWidth:        10,
		PaddleHeight:       150,
		PaddleSpeed:        200,
		PaddleInset:        20,
		BallSize:           25,
		BallVelocity:       V(100, 0),
		ReboundSpread:      100,
		HitTest:            HitTestAABB,
		ApproachOnly:       false,
		RigidBallRadius:    25,
		RigidWallThickness: 6,
		RigidRestitution:   1,
		RigidCellSize:      10,
		Player1:            Binding{Up: "w", Down: "s"},
		Player2:            Binding{Up: "up", Down: "down"},
	}
}

// RuntimeConfig contains configuration passed to the platform loop.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic rebounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Stats counts collision events since the entities were spawned.
type Stats struct {
	Frames      uint64
	WallBounces int
	PaddleHits  int
}

// PaddleState is the renderable state of one paddle.
type PaddleState struct {
	Player PlayerID
	Pos    Vec2
	W, H   float64
}

// BallState is the renderable state of the ball.
type BallState struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Snapshot is the complete renderable state after a frame.
type Snapshot struct {
	Ball    BallState
	Paddles [2]PaddleState
	Stats   Stats
}

// StepResult is returned by Simulator.Step after each frame.
type StepResult struct {
	WallBounce bool // The ball's vertical velocity was reflected this frame
	PaddleHit  bool // The ball rebounded off a paddle this frame
}
