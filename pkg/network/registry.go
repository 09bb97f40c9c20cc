package network

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Builder constructs a backend network. The weights reader may be nil, and
// a backend may ignore it entirely.
type Builder func(weights io.Reader, opts Options) (Network, error)

type registration struct {
	name     string
	priority int
	builder  Builder
}

var (
	registryMu sync.Mutex
	registry   []registration
)

// Register makes a backend available to Create under the given name.
// Backends call it from init; it panics on an empty name, a nil builder or
// a duplicate registration.
func Register(name string, priority int, builder Builder) {
	if name == "" {
		panic("network: Register with empty name")
	}
	if builder == nil {
		panic("network: Register with nil builder for " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, r := range registry {
		if r.name == name {
			panic("network: Register called twice for " + name)
		}
	}
	registry = append(registry, registration{name: name, priority: priority, builder: builder})
}

// Create builds the backend registered under name. The empty name selects
// the backend with the highest priority.
func Create(name string, weights io.Reader, opts Options) (Network, error) {
	var builder = lookup(name)
	if builder == nil {
		if name == "" {
			return nil, errors.New("network: no backends registered")
		}
		return nil, fmt.Errorf("network: unknown backend %q", name)
	}
	return builder(weights, opts)
}

func lookup(name string) Builder {
	registryMu.Lock()
	defer registryMu.Unlock()
	if name == "" {
		var best *registration
		for i := range registry {
			var r = &registry[i]
			if best == nil ||
				r.priority > best.priority ||
				(r.priority == best.priority && r.name < best.name) {
				best = r
			}
		}
		if best == nil {
			return nil
		}
		return best.builder
	}
	for i := range registry {
		if registry[i].name == name {
			return registry[i].builder
		}
	}
	return nil
}

// Names lists the registered backends, best priority first, ties by name.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	var list = make([]registration, len(registry))
	copy(list, registry)
	sort.Slice(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return list[i].name < list[j].name
	})
	var names = make([]string, len(list))
	for i, r := range list {
		names[i] = r.name
	}
	return names
}
