/*
Package polyserde provides runtime polymorphic (de)serialization for Go
interface values, using an explicit type-tag registry and an externally
tagged envelope.

A serialized interface value is a structural mapping with exactly one entry:
the key is the concrete type's tag, the value is the concrete type's own
field-level serialization:

	{"Circle": {"radius": 2.5}}

The same envelope shape is carried across encodings (JSON, YAML, DynamoDB
attribute maps); only the structural medium changes.

The library follows an explicit registration workflow:
  - Define an interface embedding polyserde.Tagged
  - Register each concrete type once, before first use, typically in init()
  - Marshal and unmarshal through a codec bound to the registry

Basic Usage:

	type Shape interface {
	    polyserde.Tagged
	}

	var Shapes = registry.New[Shape]()

	func init() {
	    registry.MustRegister(Shapes, "Circle", registry.DecodeAs[Shape, Circle]())
	}

	c := codec.NewJSON[Shape](Shapes)
	data, _ := c.Marshal(Shape(&Circle{Radius: 2.5}))
	back, _ := c.Unmarshal(data) // back is a Shape holding *Circle

Registration conflicts, malformed envelopes, unknown tags and payload decode
failures are all reported as typed errors (see the errors package); nothing
is silently defaulted or overwritten.

The registry assumes a finite set of concrete types chosen before start-up.
Registering an unbounded family of generic instantiations is out of scope:
each instantiation that should round-trip needs its own explicit tag.

For persisting heterogeneous values, the datastore packages provide a
DynamoDB-backed store that keeps the tagged envelope inside each item and an
in-memory mock for testing. The polyreg tool (cmd/polyreg) generates
registration code from a YAML manifest so tags stay declared in one place.
*/
package polyserde
