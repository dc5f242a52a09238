package tui

import (
	"testing"
	"time"
)

func TestHeldKeys(t *testing.T) {
	base := time.Unix(1000, 0)
	h := NewHeldKeys(150 * time.Millisecond)
	h.Press("W", base)
	h.Press("up", base.Add(100*time.Millisecond))

	tests := []struct {
		name   string
		at     time.Duration
		w, up  bool
		remain int
	}{
		{"both held", 120 * time.Millisecond, true, true, 2},
		{"w expired", 160 * time.Millisecond, false, true, 1},
		{"all expired", 300 * time.Millisecond, false, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := h.At(base.Add(tc.at))
			if keys.Pressed("w") != tc.w {
				t.Errorf("Pressed(w) = %v, expected %v", keys.Pressed("w"), tc.w)
			}
			if keys.Pressed("up") != tc.up {
				t.Errorf("Pressed(up) = %v, expected %v", keys.Pressed("up"), tc.up)
			}
			if len(h.last) != tc.remain {
				t.Errorf("tracked presses = %d, expected %d", len(h.last), tc.remain)
			}
		})
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	base := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	// Auto-repeat every 30ms keeps the key held.
	for i := 0; i < 10; i++ {
		h.Press("s", base.Add(time.Duration(i)*30*time.Millisecond))
	}
	if !h.At(base.Add(350 * time.Millisecond)).Pressed("s") {
		t.Error("key should still be held within the window of the last repeat")
	}
	if h.At(base.Add(400 * time.Millisecond)).Pressed("s") {
		t.Error("key should be released after the window")
	}
}

func TestHeldKeysClear(t *testing.T) {
	base := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)
	h.Press("w", base)
	h.Clear()

	if h.At(base).Pressed("w") {
		t.Error("Clear() should release every key")
	}
}
