/*
Package codec implements the externally tagged envelope over concrete
structural media.

All three codecs share one shape, a single-entry mapping whose key is the
type tag and whose value is the payload, and one dispatch protocol:

 1. Read exactly one mapping with exactly one key; anything else is a
    malformed tag error.
 2. Resolve the key through the registry; an unknown tag is a terminal error
    naming the tag.
 3. Hand the payload to the resolved decode function; its failure is wrapped
    as a payload error.

Codecs:
  - JSON: {"Circle": {"radius": 2.5}} over encoding/json
  - YAML: single-key mapping over gopkg.in/yaml.v3 nodes
  - AttributeValue: one-entry DynamoDB attribute map with an M payload,
    used by the ddb datastore

Each codec is a thin adapter around a registry.Registry[I]; the registry owns
all type knowledge, the codec owns only the medium.
*/
package codec
