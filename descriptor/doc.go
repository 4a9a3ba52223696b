/*
Package descriptor models the type-system surface the resolver works against.

A Descriptor is an opaque, interned identity for one type in a declared
hierarchy. Descriptors know their name, their immediate supertype, and the
resolution options declared on them (discriminator field, optional TrackBy
transform, AllowSelf). Subtype checks walk the explicit parent chain, so the
package works identically for hosts with and without runtime type
introspection.

Declaring a hierarchy:

	types := descriptor.NewSet()
	event, _ := types.Declare("Event", nil, descriptor.WithResolveOptions(descriptor.ResolveOptions{
	    DiscriminatorField: "type",
	}))
	match, _ := types.Declare("MatchEvent", event)

The Value interface is the only view the resolver needs over partially
decoded data; MapValue adapts plain decoded maps, and storage backends
provide their own adapters (see the datastore/ddb package).
*/
package descriptor
