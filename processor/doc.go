/*
Package processor provides code generation for type-tag registrations.

Explicit registration is a deliberate design choice, but hand-writing one
MustRegister call per concrete type invites drift between the types a
program defines and the tags it can decode. The processor reads a YAML
manifest that declares the mapping in one place:

	package: events
	interface: Event
	registry: Events
	types:
	  PlayerRegistered: PlayerRegistered
	  MatchScored: MatchScored

and generates the registration file:

	func init() {
	    registry.MustRegister(Events, "MatchScored", registry.DecodeAs[Event, MatchScored]())
	    registry.MustRegister(Events, "PlayerRegistered", registry.DecodeAs[Event, PlayerRegistered]())
	}

Output is deterministic (sorted by tag) and gofmt-formatted. Qualified
interface or type names are supported through the imports list.

The polyreg command (cmd/polyreg) wraps this package for use from go:generate:

	//go:generate polyreg -manifest registrations.yaml -out registrations_gen.go
*/
package processor
