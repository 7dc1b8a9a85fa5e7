/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/errors"
	"github.com/suparena/polyserde/registry"
)

// AttributeValue marshals and unmarshals values of interface type I as
// externally tagged DynamoDB attribute maps: a one-entry map whose key is the
// type tag and whose value is an M member holding the concrete type's
// attributes. This is the structural medium used by the ddb datastore.
type AttributeValue[I polyserde.Tagged] struct {
	types *registry.Registry[I]
}

// NewAttributeValue creates an attribute-map codec bound to the given
// registry.
func NewAttributeValue[I polyserde.Tagged](types *registry.Registry[I]) *AttributeValue[I] {
	return &AttributeValue[I]{types: types}
}

// Marshal converts v into its tagged envelope. The tag must be registered;
// this keeps envelopes of unreadable types from ever being written.
func (c *AttributeValue[I]) Marshal(v I) (map[string]types.AttributeValue, error) {
	if any(v) == nil {
		return nil, fmt.Errorf("cannot marshal nil interface value")
	}

	tag := v.TypeTag()
	if _, ok := c.types.Resolve(tag); !ok {
		return nil, errors.NewUnknownTypeError(tag)
	}

	payload, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, err
	}

	return map[string]types.AttributeValue{
		tag: &types.AttributeValueMemberM{Value: payload},
	}, nil
}

// Unmarshal decodes a tagged envelope back into an I through the registry.
func (c *AttributeValue[I]) Unmarshal(env map[string]types.AttributeValue) (I, error) {
	var zero I

	if len(env) != 1 {
		return zero, errors.NewMalformedTagError(
			fmt.Sprintf("want exactly one attribute, got %d", len(env)))
	}

	var tag string
	var attr types.AttributeValue
	for k, v := range env {
		tag, attr = k, v
	}

	m, ok := attr.(*types.AttributeValueMemberM)
	if !ok {
		return zero, errors.NewMalformedTagError("payload is not a map attribute")
	}

	fn, ok := c.types.Resolve(tag)
	if !ok {
		return zero, errors.NewUnknownTypeError(tag)
	}

	v, err := fn(avPayload(m.Value))
	if err != nil {
		return zero, errors.NewPayloadError(tag, err)
	}
	return v, nil
}

// avPayload adapts a DynamoDB attribute map to registry.Decoder.
type avPayload map[string]types.AttributeValue

func (p avPayload) Decode(v any) error {
	return attributevalue.UnmarshalMap(p, v)
}
