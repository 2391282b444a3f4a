package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Schema)
	registryMu sync.RWMutex
)

// Register adds a schema variant to the registry.
// Panics if a schema with the same key is already registered.
func Register(schema Schema) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[schema.Key]; exists {
		panic(fmt.Sprintf("schema already registered: %s", schema.Key))
	}

	registry[schema.Key] = schema
}

// Get returns a schema variant by key.
// Returns false if not found.
func Get(key string) (Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schema, ok := registry[key]
	return schema, ok
}

// All returns all registered schema variants, sorted by key for consistent
// ordering.
func All() []Schema {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Schema, 0, len(registry))
	for _, schema := range registry {
		result = append(result, schema)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// SchemaCount returns the number of registered schema variants.
func SchemaCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return len(registry)
}

// Reset clears the registry. Intended for tests.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = make(map[string]Schema)
}
