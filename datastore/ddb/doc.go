/*
Package ddb implements datastore.Store[I] on AWS DynamoDB.

Each value occupies one item:

	PK:  caller-provided key
	SK:  "VALUE"
	Doc: { "<tag>": { ...concrete attributes... } }

The Doc attribute is the externally tagged envelope produced by
codec.AttributeValue; reads resolve the tag through the store's registry, so
GetOne, Query and Stream return correctly typed values without the caller
naming a concrete type.

Construction needs a client, a table and a registry:

	store, err := ddb.NewStore[Event](accessKey, secretKey, region, table, events.Types)

Streaming keeps the paged, retrying channel protocol of the Store
interface; decode failures are reported per item so one foreign row does
not end the stream.
*/
package ddb
