package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Registry is a thread-safe name to value registry
type Registry[T any] interface {
	// Register adds a value under name. Names are unique.
	Register(name string, value T) error

	// Get retrieves the value registered under name
	Get(name string) (T, error)

	// List returns all registered names in sorted order
	List() []string

	// Has checks if a name is registered
	Has(name string) bool

	// Count returns the number of registered values
	Count() int
}

type named[T any] struct {
	mu     sync.RWMutex
	values map[string]T
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &named[T]{values: make(map[string]T)}
}

func (r *named[T]) Register(name string, value T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.values[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", name)
	}
	r.values[name] = value
	return nil
}

func (r *named[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.values[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%q is not registered", name).
			WithDetail("name", name)
	}
	return value, nil
}

func (r *named[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *named[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.values[name]
	return exists
}

func (r *named[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.values)
}

// MustRegister registers a value and panics if registration fails.
// Registration errors at wiring time are programming errors.
func MustRegister[T any](reg Registry[T], name string, value T) {
	if err := reg.Register(name, value); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
