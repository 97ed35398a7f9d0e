package aspect

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnnamedAspect is returned when registering an aspect without a name.
var ErrUnnamedAspect = errors.New("aspect has no name")

// Registry holds aspects in resolution order.
//
// Registration order is the default resolution order. An aspect named in an
// already-registered aspect's DependsOn is spliced in before the first such
// dependent. This single-pass insertion assumes shallow dependencies; it is
// not a general topological sort.
type Registry struct {
	mu      sync.RWMutex
	aspects []Aspect
}

// NewRegistry creates an empty aspect registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an aspect. Re-registering a name replaces it in place.
func (r *Registry) Register(a Aspect) error {
	if a == nil || a.Name() == "" {
		return fmt.Errorf("register aspect: %w", ErrUnnamedAspect)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if i := r.index(name); i >= 0 {
		r.aspects[i] = a
		return nil
	}

	pos := len(r.aspects)
	for i, existing := range r.aspects {
		if slices.Contains(existing.DependsOn(), name) {
			pos = i
			break
		}
	}
	r.aspects = slices.Insert(r.aspects, pos, a)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(a Aspect) {
	if err := r.Register(a); err != nil {
		panic(err)
	}
}

// Get retrieves an aspect by name.
func (r *Registry) Get(name string) (Aspect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(name); i >= 0 {
		return r.aspects[i], true
	}
	return nil, false
}

// All returns the aspects in resolution order.
func (r *Registry) All() []Aspect {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.aspects)
}

// Names returns the aspect names in resolution order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.aspects))
	for i, a := range r.aspects {
		names[i] = a.Name()
	}
	return names
}

// Len returns the number of registered aspects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aspects)
}

// Reset removes every aspect.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aspects = nil
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.aspects, func(a Aspect) bool {
		return a.Name() == name
	})
}

// RegisterBuiltins registers the built-in aspects.
func RegisterBuiltins(r *Registry) error {
	builtins := []Aspect{
		SeedColors{},
		Palettes{},
		ColorSet{},
		Typography{},
		Values{},
	}
	for _, a := range builtins {
		if err := r.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// NewBuiltinRegistry returns a registry holding the built-in aspects.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		panic(err)
	}
	return r
}
