/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typeresolve

import (
	"reflect"

	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/errors"
	"github.com/suparena/typeresolve/registry"
)

// Resolver bundles the three pieces a host serializer needs for polymorphic
// decoding: a descriptor set for declaring types, a registry for declaring
// hierarchies, and a binding table connecting descriptors to Go types.
type Resolver struct {
	types    *descriptor.Set
	registry *registry.Registry
	bindings *bindingTable
}

// New creates a Resolver with an empty descriptor set and registry.
func New() *Resolver {
	return &Resolver{
		types:    descriptor.NewSet(),
		registry: registry.New(),
		bindings: newBindingTable(),
	}
}

// Types returns the descriptor set backing this resolver.
func (r *Resolver) Types() *descriptor.Set {
	return r.types
}

// Registry returns the hierarchy registry backing this resolver.
func (r *Resolver) Registry() *registry.Registry {
	return r.registry
}

// Register declares or extends parent/child relationships. See
// registry.Registry.Add for merge and validation semantics.
func (r *Resolver) Register(regs ...registry.Registration) error {
	return r.registry.Add(regs...)
}

// Resolve determines the concrete type descriptor for a value whose declared
// type is declared. See registry.Registry.Resolve.
func (r *Resolver) Resolve(declared *descriptor.Descriptor, value descriptor.Value) (*descriptor.Descriptor, error) {
	return r.registry.Resolve(declared, value)
}

// ResolveGoType resolves the concrete descriptor for a value and returns the
// Go type bound to it, in one step. It fails with a no-binding error when the
// resolved descriptor has no bound Go type.
func (r *Resolver) ResolveGoType(declared *descriptor.Descriptor, value descriptor.Value) (reflect.Type, error) {
	concrete, err := r.registry.Resolve(declared, value)
	if err != nil {
		return nil, err
	}
	t, ok := r.GoTypeOf(concrete)
	if !ok {
		return nil, errors.NewNoBindingError(concrete.Name())
	}
	return t, nil
}
