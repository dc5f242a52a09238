package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// DefaultKeyHold is the hold window used when Options.KeyHold is zero.
const DefaultKeyHold = 150 * time.Millisecond

// Options configures a playfield model.
type Options struct {
	Settings *core.Settings
	Runtime  core.RuntimeConfig
	KeyHold  time.Duration
	Store    *storage.Store   // Optional session journal
	Logger   *log.Logger      // Optional
	Frontend string           // Recorded in the journal, e.g. "tui" or "ssh"
	Clock    func() time.Time // Defaults to time.Now
	Embedded bool             // Esc returns to the menu instead of quitting
}

// Model is the Bubble Tea model for one playfield.
type Model struct {
	sim      registry.Simulator
	settings *core.Settings
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	clock    func() time.Time
	frontend string
	embedded bool

	started    time.Time
	paused     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given simulator.
func NewModel(sim registry.Simulator, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	hold := opts.KeyHold
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	frontend := opts.Frontend
	if frontend == "" {
		frontend = "tui"
	}

	settings := opts.Settings
	if settings == nil {
		s := core.DefaultSettings()
		settings = &s
	}

	sim.Reset(cfg.Seed)

	m := Model{
		sim:      sim,
		settings: settings,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   opts.Logger,
		config:   cfg,
		keys:     NewKeyMap(settings),
		help:     help.New(),
		held:     NewHeldKeys(hold),
		clock:    clock,
		frontend: frontend,
		embedded: opts.Embedded,
		started:  clock(),
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := KeyName(msg)
	if m.keys.IsPaddleKey(name) {
		m.held.Press(name, m.clock())
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.saveSession()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionPause:
		m.paused = !m.paused
		m.held.Clear()

	case core.ActionRestart:
		m.saveSession()
		m.sim.Reset(m.config.Seed)
		m.started = m.clock()
		m.held.Clear()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize processes window resize events.
// Only the drawing is rescaled; the logical playfield keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if !m.paused {
		m.sim.Step(m.held.At(now), m.config.FrameTime())
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSession records the current run in the journal.
// Runs without a single frame are skipped. Storage failures are logged only.
func (m *Model) saveSession() {
	stats := m.sim.Snapshot().Stats
	if m.store == nil || stats.Frames == 0 {
		return
	}

	sess := storage.Session{
		Variant:     m.sim.ID(),
		Frontend:    m.frontend,
		Seed:        m.config.Seed,
		Duration:    m.clock().Sub(m.started),
		Frames:      stats.Frames,
		WallBounces: stats.WallBounces,
		PaddleHits:  stats.PaddleHits,
	}
	id, err := m.store.SaveSession(sess)
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Warn("could not save session", "variant", sess.Variant, "error", err)
		return
	}
	m.logger.Info("session saved", "id", id, "variant", sess.Variant, "frames", sess.Frames)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-lipgloss.Height(footer)))
	m.sim.Render(m.screen)
	if m.paused {
		drawPaused(m.screen)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// drawPaused overlays a boxed pause banner in the middle of the screen.
func drawPaused(s *core.Screen) {
	const banner = " PAUSED - press p to resume "
	y := s.Height() / 2
	x := (s.Width() - len(banner)) / 2
	box := core.NewRect(x-1, y-1, len(banner)+2, 3)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	s.DrawTextCentered(y, banner, core.ColorCyan)
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Simulator returns the simulator driven by this model.
func (m Model) Simulator() registry.Simulator {
	return m.sim
}

// Run starts the Bubble Tea program for a single playfield.
func Run(sim registry.Simulator, opts Options) error {
	model := NewModel(sim, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
