/*
Package datastore defines the persistence interface for polymorphic values.

The main interface is Store[I], which provides CRUD and streaming operations
for any interface type I:

	type Store[I any] interface {
	    GetOne(ctx context.Context, key string) (I, error)
	    Put(ctx context.Context, key string, v I) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]I, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[I]
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation storing one tagged envelope per item
  - mock: in-memory implementation for testing

Unlike a per-type store, a Store[I] holds values of any concrete type
registered for I; the tag persisted with each item decides how it is
decoded on the way back out.
*/
package datastore
