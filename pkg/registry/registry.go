package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/ports"
)

// Registry manages the available output formats.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]ports.ComposerFactory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]ports.ComposerFactory),
	}
}

// Register adds a format under one or more names (case-insensitive).
// If a name is already registered, it is overwritten.
func (r *Registry) Register(factory ports.ComposerFactory, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		r.formats[normalize(name)] = factory
	}
}

// Lookup returns the factory registered under name.
// Returns domain.ErrUnknownFormat if the format is not found.
func (r *Registry) Lookup(name string) (ports.ComposerFactory, error) {
	r.mu.RLock()
	factory, ok := r.formats[normalize(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", domain.ErrUnknownFormat, name, strings.Join(r.Names(), ", "))
	}
	return factory, nil
}

// Build looks up a format and creates a fresh composer for it.
func (r *Registry) Build(name string) (ports.Composer, error) {
	factory, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(), nil
}

// Names lists the registered format names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
