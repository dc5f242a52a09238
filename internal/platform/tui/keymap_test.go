package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	s := core.DefaultSettings()
	km := NewKeyMap(&s)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"quit q", runeKey('q'), core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"help", runeKey('?'), core.ActionHelp},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"paddle key", runeKey('w'), core.ActionNone},
		{"arrow paddle key", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapPaddleKeyWins(t *testing.T) {
	s := core.DefaultSettings()
	s.Player2 = core.Binding{Up: "p", Down: "l"}
	km := NewKeyMap(&s)

	if !km.IsPaddleKey("p") {
		t.Fatal("IsPaddleKey(p) = false, expected true")
	}
	if got := km.Action(runeKey('p')); got != core.ActionNone {
		t.Errorf("Action(p) = %v, expected None when p drives a paddle", got)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{runeKey('W'), "w"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeySpace}, "space"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
	}

	for _, tc := range tests {
		if got := KeyName(tc.msg); got != tc.expected {
			t.Errorf("KeyName(%v) = %q, expected %q", tc.msg, got, tc.expected)
		}
	}
}

func TestMenuKeyMapAction(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionSessions},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.Action(tc.msg); got != tc.expected {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
