package renderers

import (
	"fmt"
	"sort"
	"sync"
)

// Registration describes the implementations handling one facet type.
type Registration struct {
	Type         string `json:"type"`
	Renderer     string `json:"renderer"`
	FilterParser string `json:"filter_parser,omitempty"` // Empty when the type has no custom filter parsing
}

// HasFilterParser reports whether the type registered a filter parser.
func (r Registration) HasFilterParser() bool {
	return r.FilterParser != ""
}

// Registry holds registered facet types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Registration
}

// NewRegistry creates a new, empty facet type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Registration)}
}

// Register associates a facet type with its renderer and optional filter
// parser. Registering a type again replaces the previous registration.
func (r *Registry) Register(facetType, rendererID, filterParserID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[facetType] = Registration{
		Type:         facetType,
		Renderer:     rendererID,
		FilterParser: filterParserID,
	}
}

// Lookup returns the registration for the given facet type.
func (r *Registry) Lookup(facetType string) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.types[facetType]
	if !ok {
		return Registration{}, fmt.Errorf("%w %q", ErrUnknownFacetType, facetType)
	}
	return reg, nil
}

// Registrations returns all registrations sorted by type.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]Registration, 0, len(r.types))
	for _, reg := range r.types {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Type < regs[j].Type
	})
	return regs
}

// Len returns the number of registered facet types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
