package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the playfield key bindings. Paddle bindings come from the
// configuration; platform actions are fixed.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// NewKeyMap creates the playfield bindings for the given settings.
func NewKeyMap(s *core.Settings) KeyMap {
	return KeyMap{
		P1Up:    paddleBinding(s.Player1.Up, "P1 up"),
		P1Down:  paddleBinding(s.Player1.Down, "P1 down"),
		P2Up:    paddleBinding(s.Player2.Up, "P2 up"),
		P2Down:  paddleBinding(s.Player2.Down, "P2 down"),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "respawn")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func paddleBinding(name, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(name), key.WithHelp(name, desc))
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Pause, k.Restart},
		{k.Help, k.Back, k.Quit},
	}
}

// IsPaddleKey reports whether the named key drives a paddle.
func (k KeyMap) IsPaddleKey(name string) bool {
	for _, b := range []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down} {
		for _, bk := range b.Keys() {
			if bk == name {
				return true
			}
		}
	}
	return false
}

// Action translates a key message into a platform action.
// Paddle keys never map to an action, so a paddle bound to "p" or "r"
// does not pause or respawn.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	if k.IsPaddleKey(KeyName(msg)) {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// KeyName returns the normalized name of a key message, as used in bindings.
func KeyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return core.NormalizeKey(msg.String())
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionSessions
	MenuActionQuit
)

// MenuKeyMap defines the key bindings of the variant picker.
type MenuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Sessions key.Binding
	Quit     key.Binding
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"), // vim-style k for up
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"), // vim-style j for down
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Sessions: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sessions"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Sessions, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Action translates a key to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Sessions):
		return MenuActionSessions
	}
	return MenuActionNone
}
