// Package registry provides a global registry of level packs.
// Built-in packs register themselves in init() functions; the CLI adds
// user packs found on disk at startup.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/room-twice/internal/levels"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
	Source string // "builtin" or the directory the pack was loaded from
}

// Factory is a function that builds a validated level pack.
type Factory func() (*levels.Set, error)

type entry struct {
	info    PackInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a built-in pack factory to the registry.
// Typically called from an init() function.
// Panics if the ID is taken or the pack does not build, since both are
// programming errors.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	set, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: pack %q: %v", id, err))
	}

	entries[id] = entry{
		info:    PackInfo{ID: id, Title: set.Title, Levels: set.Len(), Source: "builtin"},
		factory: f,
	}
}

// Add registers an already loaded pack, e.g. one found in the user's
// levels directory. Unlike Register it reports a taken ID as an error.
func Add(set *levels.Set, source string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[set.ID]; exists {
		return fmt.Errorf("registry: pack %q already registered", set.ID)
	}

	entries[set.ID] = entry{
		info:    PackInfo{ID: set.ID, Title: set.Title, Levels: set.Len(), Source: source},
		factory: func() (*levels.Set, error) { return set, nil },
	}
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load builds a pack by its ID.
// Returns an error if the ID is not registered.
func Load(id string) (*levels.Set, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	return e.factory()
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
