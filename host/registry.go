package host

import (
	"fmt"
	"sort"
	"sync"
)

// Factory is a function that creates a new host instance.
// Factories are registered via Register() and called by New().
type Factory func() Host

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	hosts      = make(map[string]Factory)
)

// Register registers a host factory with the given name.
// This function is typically called from init() in host implementation
// packages, following the database/sql driver pattern:
//
//	func init() {
//	    host.Register("wasm", func() host.Host {
//	        return NewWASMHost()
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken, so
// duplicate registrations are caught during program initialization rather
// than silently overwriting each other.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("host: Register factory is nil")
	}
	if _, dup := hosts[name]; dup {
		panic("host: Register called twice for " + name)
	}
	hosts[name] = factory
}

// Unregister removes a host from the registry.
// This is primarily useful for testing to clean up between tests.
// If the host is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(hosts, name)
}

// New creates a new host instance by name.
// Returns an error if the host is not registered; the error message
// includes a hint about forgotten imports.
func New(name string) (Host, error) {
	registryMu.RLock()
	factory, ok := hosts[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("host: unknown host %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Must creates a new host instance by name, panicking on error.
// This is useful when host availability is guaranteed.
func Must(name string) Host {
	h, err := New(name)
	if err != nil {
		panic(err)
	}
	return h
}

// Hosts returns a sorted list of registered host names.
func Hosts() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a host with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := hosts[name]
	return ok
}
