/*
Package errors provides semantic error types for polyserde.

Every failure in the envelope pipeline maps to one of four sentinel errors,
so callers can branch with errors.Is regardless of which codec produced it:

	v, err := jsonCodec.Unmarshal(data)
	switch {
	case errors.IsUnknownType(err):
	    // tag parsed but nothing is registered under it
	case errors.IsMalformedTag(err):
	    // input was not a single-key mapping
	case errors.IsPayloadError(err):
	    // the concrete type rejected its payload; Unwrap for the cause
	}

Typed errors carry the details (the offending tag, the wrapped decode
failure) and match their sentinel through an Is method.

None of these errors are retried or logged by the library itself; resolution
policy belongs to the caller.
*/
package errors
