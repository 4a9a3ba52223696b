/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

// Descriptor is an opaque identity for a type in a declared hierarchy.
// Descriptors are interned by a Set, so two descriptors are the same type
// exactly when they are the same pointer.
type Descriptor struct {
	name   string
	parent *Descriptor
	opts   *ResolveOptions
}

// Name returns the declared name of the type.
func (d *Descriptor) Name() string {
	return d.name
}

// Parent returns the immediate supertype, or nil for a root type.
func (d *Descriptor) Parent() *Descriptor {
	return d.parent
}

// IsSubtypeOf reports whether d is a proper subtype of other. A type is not
// a subtype of itself.
func (d *Descriptor) IsSubtypeOf(other *Descriptor) bool {
	if d == nil || other == nil {
		return false
	}
	for p := d.parent; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

// ResolveOptions returns the resolution options declared on this type, if any.
// A type carries options only when it acts as a discriminator root (or as a
// discriminator handler for another type).
func (d *Descriptor) ResolveOptions() (ResolveOptions, bool) {
	if d.opts == nil {
		return ResolveOptions{}, false
	}
	return *d.opts, true
}

func (d *Descriptor) String() string {
	return d.name
}
