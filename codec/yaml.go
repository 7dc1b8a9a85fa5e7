/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/errors"
	"github.com/suparena/polyserde/registry"
)

// YAML marshals and unmarshals values of interface type I as externally
// tagged YAML mappings with a single key.
type YAML[I polyserde.Tagged] struct {
	types *registry.Registry[I]
}

// NewYAML creates a YAML codec bound to the given registry.
func NewYAML[I polyserde.Tagged](types *registry.Registry[I]) *YAML[I] {
	return &YAML[I]{types: types}
}

// Marshal writes v as a one-entry mapping keyed by v's type tag. The tag
// must be registered. yaml.v3 encodes the dynamic value's fields directly,
// which is the concrete type's own serialization.
func (c *YAML[I]) Marshal(v I) ([]byte, error) {
	if any(v) == nil {
		return nil, fmt.Errorf("cannot marshal nil interface value")
	}

	tag := v.TypeTag()
	if _, ok := c.types.Resolve(tag); !ok {
		return nil, errors.NewUnknownTypeError(tag)
	}
	return yaml.Marshal(map[string]any{tag: v})
}

// Unmarshal parses the document node, requires a mapping with exactly one
// string key, and dispatches the value node to the registered decode
// function.
func (c *YAML[I]) Unmarshal(data []byte) (I, error) {
	var zero I

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, errors.NewMalformedTagError(err.Error())
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return zero, errors.NewMalformedTagError("empty document")
	}

	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return zero, errors.NewMalformedTagError("not a mapping")
	}
	// Mapping content is alternating key/value nodes.
	if len(m.Content) != 2 {
		return zero, errors.NewMalformedTagError(
			fmt.Sprintf("want exactly one key, got %d", len(m.Content)/2))
	}

	keyNode, valNode := m.Content[0], m.Content[1]
	if keyNode.Kind != yaml.ScalarNode || keyNode.ShortTag() != "!!str" {
		return zero, errors.NewMalformedTagError("non-string key")
	}
	tag := keyNode.Value

	fn, ok := c.types.Resolve(tag)
	if !ok {
		return zero, errors.NewUnknownTypeError(tag)
	}

	v, err := fn(yamlPayload{node: valNode})
	if err != nil {
		return zero, errors.NewPayloadError(tag, err)
	}
	return v, nil
}

// yamlPayload adapts a YAML value node to registry.Decoder.
type yamlPayload struct {
	node *yaml.Node
}

func (p yamlPayload) Decode(v any) error {
	return p.node.Decode(v)
}
