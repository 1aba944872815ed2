// Package registry provides a global registry of backend factories.
// Backends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-dash/internal/config"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// Options carry everything a backend needs to run the game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Backend presents the game on one kind of display and owns the main loop.
type Backend interface {
	// ID returns a unique identifier for this backend (e.g., "window", "tui").
	// Used as the value of --backend and the config's backend key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run loads assets, opens the display and blocks until the player quits.
	// Asset failures are returned before the loop starts.
	Run(opts Options) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new backend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a backend. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
