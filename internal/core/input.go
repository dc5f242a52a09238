package core

import "strings"

// Action represents a platform-level action, abstracted from physical key presses.
// Paddle movement is not an action: paddles read held keys through KeyState.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause simulation
	ActionRestart        // R - respawn paddles and ball
	ActionHelp           // ? - toggle full help
	ActionBack           // Esc - leave the playfield for the menu
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies one of the two paddles.
type PlayerID int

const (
	Player1 PlayerID = iota + 1 // left paddle
	Player2                     // right paddle
)

// String returns "P1" or "P2".
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Binding holds the two key names that drive one paddle.
// Key names follow Bubble Tea's notation ("w", "up", "down", ...).
type Binding struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// KeyState reports which keys are held during the current frame.
type KeyState interface {
	Pressed(key string) bool
}

// KeySet is a KeyState backed by a set of key names.
// The zero value has no keys pressed.
type KeySet map[string]bool

// Keys creates a KeySet with the given keys pressed.
func Keys(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[NormalizeKey(k)] = true
	}
	return ks
}

// Pressed implements KeyState.
func (ks KeySet) Pressed(key string) bool {
	return ks[NormalizeKey(key)]
}

// NormalizeKey lowercases single-character key names so "W" and "w" match.
// Named keys ("up", "ctrl+c") are lowercased as well.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
