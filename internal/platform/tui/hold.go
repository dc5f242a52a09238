package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HeldKeys emulates held keys on top of terminal key presses.
// Terminals report presses (and auto-repeat) but no releases, so a key
// counts as held for a fixed window after its most recent press.
type HeldKeys struct {
	hold time.Duration
	last map[string]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold: hold,
		last: make(map[string]time.Time),
	}
}

// Press records a press of the named key at the given time.
func (h *HeldKeys) Press(name string, at time.Time) {
	h.last[core.NormalizeKey(name)] = at
}

// Clear forgets every press.
func (h *HeldKeys) Clear() {
	clear(h.last)
}

// At returns the keys held at the given time and forgets expired presses.
func (h *HeldKeys) At(now time.Time) core.KeySet {
	keys := make(core.KeySet, len(h.last))
	for name, at := range h.last {
		if now.Sub(at) < h.hold {
			keys[name] = true
		} else {
			delete(h.last, name)
		}
	}
	return keys
}
