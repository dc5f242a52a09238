// Package window runs the pong simulation in a native, fixed-size window
// through ebiten. Keys are read as truly held keys.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Settings *core.Settings
	Runtime  core.RuntimeConfig
	Title    string
	Store    *storage.Store // Optional session journal
	Logger   *log.Logger    // Optional
}

// Game adapts a simulator to ebiten.Game.
type Game struct {
	sim      registry.Simulator
	settings *core.Settings
	config   core.RuntimeConfig
	keys     keyboard
	// justPressed reports edge-triggered platform keys.
	justPressed func(ebiten.Key) bool
	paddleKeys  map[ebiten.Key]bool
	paused      bool
	hud         bool
	started     time.Time
}

// NewGame creates the ebiten adapter and spawns the entities.
func NewGame(sim registry.Simulator, settings *core.Settings, cfg core.RuntimeConfig) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		sim:         sim,
		settings:    settings,
		config:      cfg,
		keys:        keyboard{pressed: ebiten.IsKeyPressed},
		justPressed: inpututil.IsKeyJustPressed,
		paddleKeys:  make(map[ebiten.Key]bool, 4),
		hud:         true,
		started:     time.Now(),
	}
	for _, p := range []core.PlayerID{core.Player1, core.Player2} {
		b := settings.Binding(p)
		for _, name := range []string{b.Up, b.Down} {
			if k, ok := LookupKey(name); ok {
				g.paddleKeys[k] = true
			}
		}
	}
	sim.Reset(cfg.Seed)
	return g
}

// action reports whether a platform key was just pressed and does not
// drive a paddle.
func (g *Game) action(k ebiten.Key) bool {
	return !g.paddleKeys[k] && g.justPressed(k)
}

// Update advances the simulation by one fixed step per ebiten tick.
func (g *Game) Update() error {
	switch {
	case g.action(ebiten.KeyEscape), g.action(ebiten.KeyQ):
		return ebiten.Termination
	case g.action(ebiten.KeyP):
		g.paused = !g.paused
	case g.action(ebiten.KeyR):
		g.sim.Reset(g.config.Seed)
	case g.action(ebiten.KeyH):
		g.hud = !g.hud
	}

	if !g.paused {
		g.sim.Step(g.keys, g.config.FrameTime())
	}
	return nil
}

// Draw renders the black background, white paddles and the white ball.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	snap := g.sim.Snapshot()
	for _, p := range snap.Paddles {
		x, y := ToPixel(g.settings, core.V(p.Pos.X-p.W/2, p.Pos.Y+p.H/2))
		vector.DrawFilledRect(screen, x, y, float32(p.W), float32(p.H), core.ColorWhite.RGBA(), false)
	}

	bx, by := ToPixel(g.settings, snap.Ball.Pos)
	vector.DrawFilledCircle(screen, bx, by, float32(snap.Ball.Radius), core.ColorWhite.RGBA(), true)

	if g.hud {
		ebitenutil.DebugPrint(screen, g.hudText(snap))
	}
}

func (g *Game) hudText(snap core.Snapshot) string {
	text := fmt.Sprintf("%s  frame %d  walls %d  hits %d",
		g.sim.Title(), snap.Stats.Frames, snap.Stats.WallBounces, snap.Stats.PaddleHits)
	if g.paused {
		text += "  PAUSED"
	}
	return text
}

// Layout keeps the logical resolution equal to the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.settings.Width), int(g.settings.Height)
}

// ToPixel maps a centred, y-up playfield position to window pixels
// (origin top-left, y down).
func ToPixel(s *core.Settings, p core.Vec2) (x, y float32) {
	return float32(p.X + s.HalfWidth()), float32(s.HalfHeight() - p.Y)
}

// Run opens the window and blocks until it is closed.
func Run(sim registry.Simulator, opts Options) error {
	settings := opts.Settings
	g := NewGame(sim, settings, opts.Runtime)

	title := opts.Title
	if title == "" {
		title = sim.Title()
	}

	ebiten.SetWindowSize(int(settings.Width), int(settings.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.config.TickRate)

	if opts.Logger != nil {
		opts.Logger.Info("window opened", "variant", sim.ID(), "width", settings.Width, "height", settings.Height)
	}

	err := ebiten.RunGame(g)
	g.saveSession(opts.Store, opts.Logger)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// saveSession records the run in the journal; failures are logged only.
func (g *Game) saveSession(store *storage.Store, logger *log.Logger) {
	stats := g.sim.Snapshot().Stats
	if store == nil || stats.Frames == 0 {
		return
	}

	_, err := store.SaveSession(storage.Session{
		Variant:     g.sim.ID(),
		Frontend:    "window",
		Seed:        g.config.Seed,
		Duration:    time.Since(g.started),
		Frames:      stats.Frames,
		WallBounces: stats.WallBounces,
		PaddleHits:  stats.PaddleHits,
	})
	if err != nil && logger != nil {
		logger.Warn("could not save session", "variant", g.sim.ID(), "error", err)
	}
}
