package output

import (
	"fmt"
	"strings"
)

// Factory builds a fresh, empty Backend instance; Walk accumulates state
// into it, so each render needs its own.
type Factory func(opts Options) Backend

// Registry holds registered output backend factories.
type Registry struct {
	factories map[string]Factory
}

// DefaultRegistry is the package-level registry pre-loaded with the
// built-in backends (html, djot, text).
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register("html", newHTML)
	DefaultRegistry.Register("djot", newDjot)
	DefaultRegistry.Register("text", newText)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a backend factory under name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// New builds a backend instance by name from the default registry.
func New(name string, opts Options) (Backend, error) {
	return DefaultRegistry.New(name, opts)
}

// New builds a backend instance by name.
func (r *Registry) New(name string, opts Options) (Backend, error) {
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output backend: %s", name)
	}
	return f(opts), nil
}

// List returns the registered backend names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
