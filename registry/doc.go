/*
Package registry holds the discriminator-resolution core of TypeResolve.

The Registry maps a parent type descriptor to its merged registration: the
children reachable from it by discriminator key, the resolution options in
effect for that level, and whether the parent explicitly claims one of its own
discriminator slots.

Registration:

	reg := registry.New()
	err := reg.Add(registry.Registration{
	    Parent: event,
	    Children: map[string]*descriptor.Descriptor{
	        "match":  matchEvent,
	        "rating": ratingEvent,
	    },
	})

Registrations for the same parent merge across calls; incoming keys win on
collision, while the resolution options fixed by the first registration stay
in effect. Every child is validated on every call: a child must be a proper
subtype of its parent, or the parent itself when AllowSelf is set. Validation
failures abort the whole Add call without committing anything.

Resolution:

	concrete, err := reg.Resolve(event, descriptor.MapValue{"type": "match"})

Resolve walks the hierarchy recursively, reading the same source value at each
level, so one record can discriminate several nested abstraction levels. A
type with no registration resolves to itself; a registered type with no usable
discriminator resolves to itself only when AllowSelf is set and no child
claims the parent's own slot. Cycles cannot occur: the proper-subtype check at
registration time makes a descendant chain that loops back structurally
impossible.

The registry is safe for concurrent use and is meant to live for the lifetime
of the owning serializer: populate it during setup, extend it as plugins load,
and resolve against it on every polymorphic decode.
*/
package registry
