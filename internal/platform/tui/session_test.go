package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
	_ "github.com/vovakirdan/tui-pong/internal/games/rigid"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	session, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return session, cmd
}

func newTestSession() SessionModel {
	s := core.DefaultSettings()
	return NewSessionModel(Options{
		Settings: &s,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	view := m.View()
	for _, want := range []string{"Pong (classic)", "Pong (rigid body)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu should list %q", want)
		}
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start the selected variant")
	}
	if cmd == nil {
		t.Error("starting a variant should start the tick loop")
	}
	if got := m.game.Simulator().ID(); got != "classic" {
		t.Errorf("selected variant = %q, expected classic", got)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Error("esc should return to the menu")
	}
	if m.quitting {
		t.Error("esc should not end the session")
	}
}

func TestSessionSelectSecondVariant(t *testing.T) {
	m := newTestSession()

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.InGame() || m.game.Simulator().ID() != "rigid" {
		t.Fatal("expected the rigid variant to be running")
	}
}

func TestSessionJournalWithoutStore(t *testing.T) {
	m := newTestSession()

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.journal == nil {
		t.Fatal("tab should open the journal")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("journal without a store should say it is unavailable")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.journal != nil {
		t.Error("esc should leave the journal")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	m, cmd := updateSession(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q in the menu should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
