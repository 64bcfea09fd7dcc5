// Package secrets provides a thread-safe secret vault with pluggable loaders.
package secrets

import (
	"fmt"
	"sync"
)

// Loader retrieves secrets from a source (env vars, file, remote vault, etc.).
type Loader func() (map[string]string, error)

// Vault holds secret values in memory and supports atomic reloading.
type Vault struct {
	mu     sync.RWMutex
	values map[string]string
	loader Loader
}

// NewVault creates a Vault, calling the loader once to populate initial values.
func NewVault(loader Loader) (*Vault, error) {
	vals, err := loader()
	if err != nil {
		return nil, fmt.Errorf("initial secret load: %w", err)
	}
	return &Vault{
		values: vals,
		loader: loader,
	}, nil
}

// Get returns the secret for key, or an empty string if not found.
func (v *Vault) Get(key string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.values[key]
}

// Lookup returns the secret for key and whether it is present at all.
// A present-but-empty secret reports ok=true with an empty value, so callers
// can tell "configured as empty" apart from "not configured".
func (v *Vault) Lookup(key string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.values[key]
	return val, ok
}

// Redacted returns a masked form of the secret safe for logging: the first
// two characters followed by "****". Secrets of four characters or fewer are
// fully masked; missing keys return an empty string.
func (v *Vault) Redacted(key string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	val, ok := v.values[key]
	if !ok || val == "" {
		return ""
	}
	if len(val) <= 4 {
		return "****"
	}
	return val[:2] + "****"
}

// Keys returns the names of all loaded secrets.
func (v *Vault) Keys() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	keys := make([]string, 0, len(v.values))
	for k := range v.values {
		keys = append(keys, k)
	}
	return keys
}

// Reload calls the loader and swaps in the new values atomically.
// If the loader returns an error, existing values are preserved.
func (v *Vault) Reload() error {
	newVals, err := v.loader()
	if err != nil {
		return fmt.Errorf("reload secrets: %w", err)
	}
	v.mu.Lock()
	v.values = newVals
	v.mu.Unlock()
	return nil
}
