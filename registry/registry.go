/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/polyserde/errors"
)

// Decoder is the abstract structural reader handed to a DecodeFunc. Each codec
// backend (JSON, YAML, DynamoDB attribute maps) supplies its own implementation
// wrapping the raw payload it extracted from the tagged envelope.
type Decoder interface {
	Decode(v any) error
}

// DecodeFunc parses one payload into a value of interface type I. The signature
// is fixed and carries no concrete type information, which is what lets decode
// functions for unrelated concrete types share one registry.
type DecodeFunc[I any] func(dec Decoder) (I, error)

// Registry maps type tags to decode functions for a single interface type I.
// It is safe for concurrent use. A registry is created once, populated during
// start-up (typically from init functions), and never torn down.
type Registry[I any] struct {
	mu      sync.Mutex
	entries map[string]DecodeFunc[I]
}

// New creates an empty registry for interface type I.
func New[I any]() *Registry[I] {
	return &Registry[I]{
		entries: make(map[string]DecodeFunc[I]),
	}
}

// ConflictError reports an attempt to register a tag that is already taken.
// Existing is the decode function that was left in place, so the caller can
// inspect what the duplicate registration would have displaced.
type ConflictError[I any] struct {
	Tag      string
	Existing DecodeFunc[I]
}

func (e *ConflictError[I]) Error() string {
	return fmt.Sprintf("type tag %q already registered", e.Tag)
}

func (e *ConflictError[I]) Is(target error) bool {
	return target == errors.ErrRegistrationConflict
}

// Register adds a decode function under the given tag. The first registration
// for a tag wins: a duplicate is rejected with a ConflictError carrying the
// previous entry, and the map is left untouched. Registration is explicit by
// design; nothing registers itself before main.
func (r *Registry[I]) Register(tag string, fn DecodeFunc[I]) error {
	if tag == "" {
		return fmt.Errorf("registry: empty type tag")
	}
	if fn == nil {
		return fmt.Errorf("registry: nil decode func for tag %q", tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.entries[tag]; exists {
		return &ConflictError[I]{Tag: tag, Existing: prev}
	}
	r.entries[tag] = fn
	return nil
}

// MustRegister panics on registration error. Useful from init functions and
// generated code, where a conflict means two types claimed the same tag.
func MustRegister[I any](r *Registry[I], tag string, fn DecodeFunc[I]) {
	if err := r.Register(tag, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the decode function registered under tag, if any. The lock
// covers only the map read; callers invoke the returned function after the
// lock is released.
func (r *Registry[I]) Resolve(tag string) (DecodeFunc[I], bool) {
	r.mu.Lock()
	fn, ok := r.entries[tag]
	r.mu.Unlock()
	return fn, ok
}

// Tags returns all registered tags in sorted order.
func (r *Registry[I]) Tags() []string {
	r.mu.Lock()
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	r.mu.Unlock()

	sort.Strings(tags)
	return tags
}

// Len returns the number of registered tags.
func (r *Registry[I]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// DecodeAs builds the decode function for concrete type T behind interface I.
// This factory is the only place concrete-type-specific code exists: it
// allocates a fresh T, decodes the payload into it with T's own rules, and
// returns the pointer upcast to I. Decode failures propagate unchanged.
func DecodeAs[I any, T any]() DecodeFunc[I] {
	return func(dec Decoder) (I, error) {
		out := new(T)
		if err := dec.Decode(out); err != nil {
			var zero I
			return zero, err
		}
		v, ok := any(out).(I)
		if !ok {
			var zero I
			return zero, fmt.Errorf("registry: %T does not implement the target interface", out)
		}
		return v, nil
	}
}
