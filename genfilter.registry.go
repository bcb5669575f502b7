package genfilter

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps action identifiers to factories. It replaces reflective class
// loading with an explicit table populated at startup, and is thread-safe for
// concurrent read/write access with first-come-wins semantics.
type Registry struct {
	factories map[string]ActionFactory
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates an empty action registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		factories: make(map[string]ActionFactory),
		logger:    logger,
	}
}

// Register adds an action factory under the given identifier. If the
// identifier is already taken the existing registration wins and an error is
// returned.
func (r *Registry) Register(id string, factory ActionFactory) error {
	if factory == nil {
		return NewRegistryError(ErrMsgNilActionFactory, id)
	}
	if id == "" {
		return NewRegistryError(ErrMsgEmptyActionID, "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		r.logger.Warn(LogMsgActionCollision, zap.String(LogFieldAction, id))
		return NewRegistryError(ErrMsgActionExists, id)
	}

	r.factories[id] = factory
	r.logger.Debug(LogMsgActionRegistered, zap.String(LogFieldAction, id))
	return nil
}

// MustRegister adds an action factory and panics if registration fails. Use
// this for built-in actions that must always be available.
func (r *Registry) MustRegister(id string, factory ActionFactory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// Resolve produces a new, independent action instance for the given
// identifier. Unknown identifiers and factories that produce nil are reported
// as configuration errors naming the offending identifier.
func (r *Registry) Resolve(id string) (Action, error) {
	r.mu.RLock()
	factory, exists := r.factories[id]
	r.mu.RUnlock()

	if !exists {
		return nil, NewUnknownActionError(id)
	}

	action := factory()
	if action == nil {
		return nil, NewRegistryError(ErrMsgNilAction, id)
	}
	return action, nil
}

// Has checks whether an action is registered for the given identifier.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[id]
	return exists
}

// List returns all registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.factories)
}
