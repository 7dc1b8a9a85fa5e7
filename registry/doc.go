/*
Package registry maps type tags to decode functions for one interface type.

A Registry[I] is the lookup table behind polymorphic deserialization: the tag
read from an externally tagged envelope selects the decode function that knows
how to build the concrete value and hand it back as I.

Registration is explicit and happens once per concrete type, typically in an
init function:

	var Shapes = registry.New[Shape]()

	func init() {
	    registry.MustRegister(Shapes, "Circle", registry.DecodeAs[Shape, Circle]())
	    registry.MustRegister(Shapes, "Rect", registry.DecodeAs[Shape, Rect]())
	}

Duplicate tags are rejected rather than overwritten; the returned
ConflictError carries the entry that stayed in place so the caller can decide
how to resolve the collision. Automatic link-time registration was rejected
deliberately: it cannot surface a tag collision as an ordinary error.

DecodeAs is the generic-to-erased boundary. Everything downstream of it works
with plain DecodeFunc values, so one map holds decoders for unrelated
concrete types.

The registry assumes a finite set of concrete types chosen before start-up.
Open-ended generic families (one tag per instantiation of a parameterized
type) are not supported; see the polyserde package documentation.
*/
package registry
