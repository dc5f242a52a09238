package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// keyAliases maps terminal-style key names onto ebiten keys so one set of
// bindings drives both frontends.
var keyAliases = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
}

// keyNames indexes every ebiten key by its lowercased name ("a", "arrowup", "digit1").
var keyNames = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key, int(ebiten.KeyMax)+len(keyAliases))
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := strings.ToLower(k.String())
		names[name] = k
		if digit, ok := strings.CutPrefix(name, "digit"); ok {
			names[digit] = k
		}
	}
	for name, k := range keyAliases {
		names[name] = k
	}
	return names
}()

// LookupKey resolves a binding key name to an ebiten key.
func LookupKey(name string) (ebiten.Key, bool) {
	k, ok := keyNames[core.NormalizeKey(name)]
	return k, ok
}

// keyboard is a core.KeyState over ebiten's held-key state.
type keyboard struct {
	pressed func(ebiten.Key) bool
}

// Pressed implements core.KeyState.
func (kb keyboard) Pressed(name string) bool {
	k, ok := LookupKey(name)
	return ok && kb.pressed(k)
}
