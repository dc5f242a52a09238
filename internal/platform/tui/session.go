package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

// SessionModel manages the full session flow: menu -> playfield -> menu,
// with the session journal reachable from the menu.
// This is the top-level model used for SSH sessions and for local play
// without a preselected variant.
type SessionModel struct {
	opts     Options
	menu     MenuModel
	game     *Model
	journal  *JournalModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	opts.Embedded = true
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.journal != nil:
		return m.updateJournal(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsSessions() {
		journal := NewJournalModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.journal = &journal
		return m, journal.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		sim, err := registry.Create(selected.ID, m.opts.Settings)
		if err != nil {
			// Shouldn't happen since menu only shows registered variants
			m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
			return m, nil
		}
		if m.opts.Logger != nil {
			m.opts.Logger.Info("variant selected", "variant", selected.ID, "frontend", m.opts.Frontend)
		}

		game := NewModel(sim, m.opts)
		m.game = &game
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in playfield mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	game := next.(Model)
	m.game = &game

	if game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateJournal handles updates when showing the session journal.
func (m SessionModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.journal.Update(msg)
	journal := next.(JournalModel)
	m.journal = &journal

	if journal.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if journal.IsGoingBack() {
		m.journal = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.journal != nil:
		return m.journal.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a playfield is active.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
