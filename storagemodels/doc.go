/*
Package storagemodels defines the data structures shared by datastore
implementations.

QueryParams carries the query shape (key condition, filter, index, paging):

	params := &QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "EVENT#match-7"},
	    },
	    Limit: aws.Int32(100),
	}

StreamResult wraps each streamed value with its raw attributes and
per-item metadata; StreamOptions configures buffering, paging and retry
behavior through functional options:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	}

These types keep the Store interface identical across backends.
*/
package storagemodels
