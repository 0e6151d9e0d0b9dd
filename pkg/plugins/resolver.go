package plugins

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RuntimeName identifies the core service worker runtime script. It is
	// always imported first.
	RuntimeName = "__sw"

	// URLPrefix marks plugin references that are already absolute URLs.
	URLPrefix = "https:"

	// DefaultRuntimeURL locates the runtime script when the registry does not
	// define RuntimeName.
	DefaultRuntimeURL = "https://unpkg.com/@locomote.sh/sw@" + VersionPlaceholder + "/sw.js"
)

// ErrUnknownPlugin matches every UnknownPluginError via errors.Is.
var ErrUnknownPlugin = errors.New("plugins: unknown plugin")

// UnknownPluginError names a reference that is neither a URL nor registered.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("bad plugin name: %s", e.Name)
}

// Is lets errors.Is(err, ErrUnknownPlugin) match.
func (e *UnknownPluginError) Is(target error) bool {
	return target == ErrUnknownPlugin
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithRuntime overrides the builder used for RuntimeName when the registry
// has no entry for it.
func WithRuntime(builder URLBuilder) ResolverOption {
	return func(r *Resolver) {
		if builder != nil {
			r.runtime = builder
		}
	}
}

// Resolver maps plugin references to absolute script URLs.
type Resolver struct {
	registry *Registry
	runtime  URLBuilder
}

// NewResolver constructs a Resolver over registry. A nil registry behaves as
// an empty one.
func NewResolver(registry *Registry, options ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: registry,
		runtime:  Template(DefaultRuntimeURL),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve returns the runtime URL followed by one URL per reference, in input
// order. Resolution is all-or-nothing: the first unknown name aborts with an
// UnknownPluginError and no partial list.
func (r *Resolver) Resolve(refs []string, version string) ([]string, error) {
	urls := make([]string, 0, len(refs)+1)

	runtime, err := r.resolveOne(RuntimeName, version)
	if err != nil {
		return nil, err
	}
	urls = append(urls, runtime)

	for _, ref := range refs {
		url, err := r.resolveOne(ref, version)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (r *Resolver) resolveOne(ref, version string) (string, error) {
	if strings.HasPrefix(ref, URLPrefix) {
		return ref, nil
	}
	if builder, ok := r.registry.Lookup(ref); ok {
		return builder(version), nil
	}
	if ref == RuntimeName && r.runtime != nil {
		return r.runtime(version), nil
	}
	return "", &UnknownPluginError{Name: ref}
}
