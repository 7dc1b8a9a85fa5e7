/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/errors"
	"github.com/suparena/polyserde/registry"
)

// JSON marshals and unmarshals values of interface type I as externally
// tagged JSON objects: {"<tag>": {<fields>}}.
type JSON[I polyserde.Tagged] struct {
	types *registry.Registry[I]
}

// NewJSON creates a JSON codec bound to the given registry.
func NewJSON[I polyserde.Tagged](types *registry.Registry[I]) *JSON[I] {
	return &JSON[I]{types: types}
}

// Marshal writes v as a single-key object keyed by v's own type tag. The
// tag must be registered; a value of an unregistered type is rejected here
// rather than producing an envelope no registry could read back. The payload
// is produced by marshaling the concrete value directly, so it goes through
// the type's field-level serialization and never re-enters the envelope path.
func (c *JSON[I]) Marshal(v I) ([]byte, error) {
	if any(v) == nil {
		return nil, fmt.Errorf("cannot marshal nil interface value")
	}

	tag := v.TypeTag()
	if _, ok := c.types.Resolve(tag); !ok {
		return nil, errors.NewUnknownTypeError(tag)
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	env := map[string]json.RawMessage{
		tag: payload,
	}
	return json.Marshal(env)
}

// Unmarshal reads a single-key object, resolves its key through the
// registry and hands the payload to the matching decode function. Once the
// tag is consumed the parse is committed to that type; no other candidates
// are tried.
func (c *JSON[I]) Unmarshal(data []byte) (I, error) {
	var zero I

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		var te *json.UnmarshalTypeError
		if stderrors.As(err, &te) {
			return zero, errors.NewMalformedTagError("not a JSON object")
		}
		return zero, errors.NewMalformedTagError(err.Error())
	}
	if len(env) != 1 {
		return zero, errors.NewMalformedTagError(
			fmt.Sprintf("want exactly one key, got %d", len(env)))
	}

	var tag string
	var payload json.RawMessage
	for k, v := range env {
		tag, payload = k, v
	}

	fn, ok := c.types.Resolve(tag)
	if !ok {
		return zero, errors.NewUnknownTypeError(tag)
	}

	v, err := fn(jsonPayload(payload))
	if err != nil {
		return zero, errors.NewPayloadError(tag, err)
	}
	return v, nil
}

// jsonPayload adapts a raw JSON payload to registry.Decoder.
type jsonPayload []byte

func (p jsonPayload) Decode(v any) error {
	return json.Unmarshal(p, v)
}
