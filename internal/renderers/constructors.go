package renderers

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Constructor builds an implementation from string arguments. Renderers
// receive the facet name; filter parsers receive no arguments.
type Constructor func(args ...string) (any, error)

// Constructors turns implementation identifiers into live objects.
type Constructors struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewConstructors creates an empty instantiation service.
func NewConstructors() *Constructors {
	return &Constructors{ctors: make(map[string]Constructor)}
}

// Register associates an implementation identifier with its constructor.
// A later registration for the same identifier wins.
func (c *Constructors) Register(id string, ctor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors[id] = ctor
}

// Create instantiates the implementation registered under id.
func (c *Constructors) Create(id string, args ...string) (any, error) {
	c.mu.RLock()
	ctor, ok := c.ctors[id]
	c.mu.RUnlock()

	if !ok || ctor == nil {
		return nil, fmt.Errorf("%w: no constructor registered for %q", ErrInstantiationFailed, id)
	}

	obj, err := ctor(args...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating %q: %w", ErrInstantiationFailed, id, err)
	}
	if isNil(obj) {
		return nil, fmt.Errorf("%w: constructor for %q returned nil", ErrInstantiationFailed, id)
	}
	return obj, nil
}

// isNil also catches typed nil pointers wrapped in the interface.
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IDs returns the registered identifiers in sorted order.
func (c *Constructors) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.ctors))
	for id := range c.ctors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
