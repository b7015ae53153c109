// Package registry maps game variant ids to factories.
// Variants register themselves in init() so the CLI can list and create
// them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebite/internal/core"
)

// Env carries the services a game may use. Any field may be nil.
type Env struct {
	Scheduler core.Scheduler     // Tick source the game starts and stops
	Store     core.KeyValueStore // Best-score persistence
	Logger    *log.Logger
}

// Game is the interface every registered game implements.
// Games hold pure logic with no Bubble Tea dependency; the platform maps
// keys to actions, delivers ticks and frames, and draws the screen buffer.
type Game interface {
	// ID returns a unique identifier (e.g. "snakebite").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// TickPeriod returns the fixed simulation period.
	TickPeriod() time.Duration

	// Reset initializes the game and wires it to its services.
	// Called once before the program starts.
	Reset(cfg core.RuntimeConfig, env Env)

	// HandleInput reacts to one key event.
	HandleInput(in core.InputFrame) core.StepResult

	// Step advances the simulation by one tick.
	Step() core.StepResult

	// Animate advances presentation-only effects by one frame.
	Animate()

	// Render draws the current state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Describer is implemented by games that offer a one-line description
// for the variant picker and the list command.
type Describer interface {
	Description() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh, unwired game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on a duplicate id, which can
// only happen through a programming error in an init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns every registered variant sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
