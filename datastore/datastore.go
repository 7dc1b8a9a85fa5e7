/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/polyserde/storagemodels"
)

// Store persists heterogeneous values behind interface type I. Every stored
// item carries its tagged envelope, so reads recover the concrete type
// through the registry regardless of what else shares the table.
type Store[I any] interface {
	// GetOne retrieves a single value by key.
	GetOne(ctx context.Context, key string) (I, error)

	// Put stores v under key. v's dynamic type must be registered.
	Put(ctx context.Context, key string, v I) error

	// Query returns all values matching the given parameters. A nil params
	// requests an unconstrained read; a backend that cannot serve one
	// returns an error rather than panicking.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]I, error)

	// Stream emits matching values on a channel, page by page. The nil
	// params contract matches Query; a backend that rejects it delivers the
	// error as the channel's only result.
	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[I]

	// Delete removes the value stored under key.
	Delete(ctx context.Context, key string) error
}
