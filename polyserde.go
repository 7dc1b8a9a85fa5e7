/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyserde

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/polyserde/datastore"
)

// Tagged is the capability a concrete type needs to participate in
// polymorphic serialization: it must name itself. The tag must be stable
// across process runs and unique within one interface's namespace, since it
// is written alongside persisted payloads and is the only way the concrete
// type is recovered later.
type Tagged interface {
	TypeTag() string
}

// Serde marshals and unmarshals values of interface type I as externally
// tagged byte encodings. The codec package provides JSON and YAML
// implementations; codec.AttributeValue covers the DynamoDB attribute-map
// medium with the same envelope shape but a non-byte signature.
type Serde[I Tagged] interface {
	Marshal(v I) ([]byte, error)
	Unmarshal(data []byte) (I, error)
}

// TypedStores provides type-safe management of named stores for a specific
// interface type I.
type TypedStores[I any] struct {
	mu     sync.RWMutex
	stores map[string]datastore.Store[I]
}

// NewTypedStores creates a new TypedStores for interface type I.
func NewTypedStores[I any]() *TypedStores[I] {
	return &TypedStores[I]{
		stores: make(map[string]datastore.Store[I]),
	}
}

// Register adds a store with the given key.
func (ts *TypedStores[I]) Register(key string, s datastore.Store[I]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; exists {
		return fmt.Errorf("store with key %q already registered", key)
	}

	ts.stores[key] = s
	return nil
}

// Get retrieves a store by key.
func (ts *TypedStores[I]) Get(key string) (datastore.Store[I], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	s, exists := ts.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}

	return s, nil
}

// Remove deletes a store by key.
func (ts *TypedStores[I]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; !exists {
		return fmt.Errorf("store with key %q not found", key)
	}

	delete(ts.stores, key)
	return nil
}

// List returns all registered store keys.
func (ts *TypedStores[I]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.stores))
	for k := range ts.stores {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStores manages TypedStores instances for different interface types.
type MultiTypeStores struct {
	mu       sync.Mutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeStores creates a new MultiTypeStores.
func NewMultiTypeStores() *MultiTypeStores {
	return &MultiTypeStores{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStores returns the TypedStores for interface type I, creating it if
// necessary.
func GetTypedStores[I any](mts *MultiTypeStores) *TypedStores[I] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	typ := reflect.TypeOf((*I)(nil)).Elem()

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStores[I])
	}

	newStorage := NewTypedStores[I]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterStore is a convenience function to register a store for interface
// type I.
func RegisterStore[I any](mts *MultiTypeStores, key string, s datastore.Store[I]) error {
	return GetTypedStores[I](mts).Register(key, s)
}

// GetStore is a convenience function to get a store for interface type I.
func GetStore[I any](mts *MultiTypeStores, key string) (datastore.Store[I], error) {
	return GetTypedStores[I](mts).Get(key)
}
