/*
Package typeresolve resolves, at deserialization time, the concrete runtime
type to instantiate for a value whose declared type is an abstract or
extendable base type. The choice of concrete type is driven by a
discriminator value embedded in the serialized data, walked recursively
through registered hierarchy levels so a single record can discriminate
several nested abstraction levels.

The library follows a declare → register → resolve workflow:
  - Declare: intern type descriptors and their resolution options
  - Register: declare parent/child hierarchy levels, incrementally
  - Resolve: map (declared type, raw value) to a concrete type per decode

Key Features:
  - Multi-level hierarchies with per-level discriminator fields
  - Incremental registration with merge semantics and fail-fast validation
  - Optional TrackBy transforms from raw field values to lookup keys
  - Self-resolution for abstract types used directly (AllowSelf)
  - Go type bindings for instantiating resolved types
  - Declarative YAML hierarchy specs via the processor package
  - DynamoDB-backed polymorphic decoding via datastore/ddb

Basic Usage:

	r := typeresolve.New()
	event, _ := r.Types().Declare("Event", nil, descriptor.WithResolveOptions(descriptor.ResolveOptions{
	    DiscriminatorField: "type",
	}))
	match, _ := r.Types().Declare("MatchEvent", event)

	_ = r.Register(registry.Registration{
	    Parent:   event,
	    Children: map[string]*descriptor.Descriptor{"match": match},
	})

	concrete, err := r.Resolve(event, descriptor.MapValue{"type": "match"})
	// concrete == match

For more information, see the documentation at https://github.com/suparena/typeresolve
*/
package typeresolve
