package compose

import (
	"log"
	"sync"
)

// Registry is the name-keyed fragment store. It is an explicitly
// constructed instance injected into the modal builder, not package state:
// register once, read many. Storage order is irrelevant; render order is
// always the layout config's component order, decided by the caller.
type Registry struct {
	mu        sync.RWMutex
	fragments map[string]Fragment
}

// NewRegistry constructs a registry and synchronously drains the default
// extension queue into it, in append order. Fragment packages queue their
// registrations from init, so by the time a registry exists every deferred
// set is applied. Direct Register calls keep working for the life of the
// registry.
func NewRegistry() *Registry {
	return NewRegistryWithQueue(DefaultQueue)
}

// NewRegistryWithQueue constructs a registry draining the given queue.
// Passing nil skips draining entirely.
func NewRegistryWithQueue(queue *Queue) *Registry {
	r := &Registry{fragments: make(map[string]Fragment)}
	if queue != nil {
		queue.drainInto(r)
	}
	return r
}

// Register stores a fragment under its name. Registering an already-known
// name overwrites the previous fragment.
func (r *Registry) Register(f Fragment) {
	if f == nil || f.Name() == "" {
		log.Printf("[Registry] ignoring registration with empty name")
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fragments[f.Name()] = f
}

// Get returns the fragment registered under name, if any.
func (r *Registry) Get(name string) (Fragment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fragments[name]
	return f, ok
}

// Names returns the registered fragment names in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fragments))
	for name := range r.fragments {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fragments)
}
