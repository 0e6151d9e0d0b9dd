package plugins

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// VersionPlaceholder is substituted with the configured version by Template.
const VersionPlaceholder = "{version}"

// URLBuilder produces a plugin script URL for a service worker version.
type URLBuilder func(version string) string

// Template returns a URLBuilder replacing every VersionPlaceholder in pattern.
func Template(pattern string) URLBuilder {
	return func(version string) string {
		return strings.ReplaceAll(pattern, VersionPlaceholder, version)
	}
}

// Registry stores URL builders by plugin name. It is safe for concurrent use;
// callers are expected to finish registration before a build starts.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]URLBuilder
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]URLBuilder),
	}
}

// Register adds a builder under name. Duplicate names return an error.
func (r *Registry) Register(name string, builder URLBuilder) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plugins: plugin name is required")
	}
	if builder == nil {
		return fmt.Errorf("plugins: url builder for %q is required", name)
	}
	if strings.HasPrefix(name, URLPrefix) {
		return fmt.Errorf("plugins: plugin name %q collides with the URL prefix", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("plugins: plugin %q already registered", name)
	}
	r.builders[name] = builder
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, builder URLBuilder) {
	if err := r.Register(name, builder); err != nil {
		panic(err)
	}
}

// Lookup returns the builder registered for name.
func (r *Registry) Lookup(name string) (URLBuilder, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[name]
	return builder, ok
}

// Has reports whether a plugin is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// List returns a sorted list of plugin names.
func (r *Registry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.builders)
}
