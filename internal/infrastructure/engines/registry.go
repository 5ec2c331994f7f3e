package engines

import (
	"sort"
	"sync"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
)

// Registry manages the analyzers whose reports can be normalized.
// It implements ports.EngineRegistry.
type Registry struct {
	mu      sync.RWMutex
	engines map[ports.EngineID]ports.Engine
}

// NewRegistry creates a new engine registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[ports.EngineID]ports.Engine),
	}
}

// Register adds an engine to the registry, replacing any engine with the same id.
func (r *Registry) Register(engine ports.Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[engine.ID()] = engine
}

// Get returns an engine by ID.
func (r *Registry) Get(id ports.EngineID) (ports.Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	engine, ok := r.engines[id]
	return engine, ok
}

// IDs returns the registered engine ids in sorted order.
func (r *Registry) IDs() []ports.EngineID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ports.EngineID, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of registered engines.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}

var _ ports.EngineRegistry = (*Registry)(nil)
