// Package registry provides a global registry for simulation variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Simulator is the interface every pong variant implements.
// Simulators contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input polling, timing, and presentation.
type Simulator interface {
	// ID returns a unique identifier for this variant (e.g., "classic", "rigid").
	// Used for CLI arguments and session records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset spawns both paddles and the ball in their initial positions.
	// The seed drives the rebound randomness.
	Reset(seed int64)

	// Step advances the simulation by one frame of dt seconds:
	// paddles first, then the ball.
	Step(keys core.KeyState, dt float64) core.StepResult

	// Snapshot returns the renderable state after the last frame.
	Snapshot() core.Snapshot

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)
}

// Info contains metadata about a registered variant.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new simulator bound to the given settings.
type Factory func(settings *core.Settings) Simulator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	defaults := core.DefaultSettings()
	titles[id] = f(&defaults).Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string, settings *core.Settings) (Simulator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(settings), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
