package notifier

import (
	"fmt"
	"sync"
)

// Factory is a constructor function that creates a new Sender instance.
// options carries provider-specific settings; lookup resolves the webhook
// secret when no explicit destination URL is given.
type Factory func(options map[string]string, lookup SecretLookup) (Sender, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes a sender factory available by name.
// It is typically called from an init() function in the adapter package.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("notifier: duplicate registration for %q", name))
	}
	factories[name] = factory
}

// New creates a new Sender by name using the registered factory.
func New(name string, options map[string]string, lookup SecretLookup) (Sender, error) {
	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("notifier: unknown provider %q", name)
	}
	return factory(options, lookup)
}

// Available returns the names of all registered senders.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}
