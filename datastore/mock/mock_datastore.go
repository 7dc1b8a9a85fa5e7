/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/codec"
	"github.com/suparena/polyserde/errors"
	"github.com/suparena/polyserde/registry"
	"github.com/suparena/polyserde/storagemodels"
)

// Store is an in-memory datastore.Store[I] for testing. It is not a plain
// map of values: every Put marshals into the tagged envelope and every read
// decodes through the registry, so tests cover the same polymorphic path as
// the DynamoDB store without AWS.
type Store[I polyserde.Tagged] struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue
	codec *codec.AttributeValue[I]
}

// New creates an empty mock store bound to the given registry.
func New[I polyserde.Tagged](reg *registry.Registry[I]) *Store[I] {
	return &Store[I]{
		items: make(map[string]map[string]types.AttributeValue),
		codec: codec.NewAttributeValue[I](reg),
	}
}

// GetOne retrieves a single value by key.
func (m *Store[I]) GetOne(ctx context.Context, key string) (I, error) {
	m.mu.RLock()
	env, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		var zero I
		return zero, errors.NewNotFoundError(key)
	}
	return m.codec.Unmarshal(env)
}

// Put stores v under key.
func (m *Store[I]) Put(ctx context.Context, key string, v I) error {
	env, err := m.codec.Marshal(v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.items[key] = env
	m.mu.Unlock()
	return nil
}

// Query returns stored values in key order. Expression fields of params are
// ignored; only Limit is honored.
func (m *Store[I]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]I, error) {
	envs, keys := m.snapshot()

	limit := len(keys)
	if params != nil && params.Limit != nil && int(*params.Limit) < limit {
		limit = int(*params.Limit)
	}

	results := make([]I, 0, limit)
	for _, key := range keys[:limit] {
		v, err := m.codec.Unmarshal(envs[key])
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Stream emits stored values in key order, honoring page size metadata.
func (m *Store[I]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[I] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[I], options.BufferSize)

	go func() {
		defer close(resultCh)

		envs, keys := m.snapshot()
		pageSize := int(options.PageSize)
		if pageSize <= 0 {
			pageSize = len(keys)
		}

		var index int64
		for i, key := range keys {
			result := storagemodels.StreamResult[I]{
				Raw: envs[key],
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: i/pageSize + 1,
					Timestamp:  time.Now(),
				},
			}

			v, err := m.codec.Unmarshal(envs[key])
			if err != nil {
				result.Error = err
			} else {
				result.Item = v
			}

			select {
			case resultCh <- result:
				index++
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

// Delete removes the value stored under key.
func (m *Store[I]) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; !ok {
		return errors.NewNotFoundError(key)
	}
	delete(m.items, key)
	return nil
}

// Len returns the number of stored values.
func (m *Store[I]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Store[I]) snapshot() (map[string]map[string]types.AttributeValue, []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	envs := make(map[string]map[string]types.AttributeValue, len(m.items))
	keys := make([]string, 0, len(m.items))
	for k, v := range m.items {
		envs[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return envs, keys
}
