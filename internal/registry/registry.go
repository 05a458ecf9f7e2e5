// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Game is the interface all mini-games implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the short identifier (e.g., "chimp", "schulte").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. The RuntimeConfig carries the RNG seed
	// and the score callbacks.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session to now, in milliseconds since Reset, then
	// applies the actions in the frame.
	Step(now int64, in core.InputFrame) core.StepResult

	// Press applies a single action at now. Hosts call it per key event so
	// typed input keeps its order and timing.
	Press(now int64, a core.Action)

	// SetPaused is the host-imposed pause flag, applied at the last time the
	// game has seen. Games without a pause capability ignore it.
	SetPaused(paused bool)

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	bySlug  = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if the ID or slug is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Slug == "" {
		info.Slug = info.ID
	}
	if _, exists := bySlug[info.Slug]; exists {
		panic(fmt.Sprintf("registry: slug %q already registered", info.Slug))
	}

	entries[info.ID] = entry{info: info, factory: f}
	bySlug[info.Slug] = info.ID
}

// List returns the catalogue in lobby order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup finds a game's metadata by ID or slug.
func Lookup(name string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if id, ok := bySlug[name]; ok {
		name = id
	}
	e, ok := entries[name]
	return e.info, ok
}

// Create instantiates a new game by its ID or slug.
// Returns an error if the game is not registered.
func Create(name string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	if id, ok := bySlug[name]; ok {
		name = id
	}
	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", name)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID or slug is registered.
func Exists(name string) bool {
	_, ok := Lookup(name)
	return ok
}
