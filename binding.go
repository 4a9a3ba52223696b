/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typeresolve

import (
	"reflect"
	"sync"

	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/errors"
)

// bindingTable associates descriptors with Go types in both directions.
type bindingTable struct {
	mu      sync.RWMutex
	goTypes map[*descriptor.Descriptor]reflect.Type
	descs   map[reflect.Type]*descriptor.Descriptor
}

func newBindingTable() *bindingTable {
	return &bindingTable{
		goTypes: make(map[*descriptor.Descriptor]reflect.Type),
		descs:   make(map[reflect.Type]*descriptor.Descriptor),
	}
}

// Bind associates descriptor d with the Go type T, so that decoding layers
// can instantiate concrete values for resolved descriptors. Binding the same
// descriptor again replaces the previous association.
func Bind[T any](r *Resolver, d *descriptor.Descriptor) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	b := r.bindings
	b.mu.Lock()
	defer b.mu.Unlock()
	b.goTypes[d] = t
	b.descs[t] = d
}

// DescriptorFor returns the descriptor bound to the Go type T, if any.
func DescriptorFor[T any](r *Resolver) (*descriptor.Descriptor, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	b := r.bindings
	b.mu.RLock()
	defer b.mu.RUnlock()
	d, ok := b.descs[t]
	return d, ok
}

// GoTypeOf returns the Go type bound to descriptor d, if any.
func (r *Resolver) GoTypeOf(d *descriptor.Descriptor) (reflect.Type, bool) {
	b := r.bindings
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.goTypes[d]
	return t, ok
}

// NewInstance allocates a zero value of the Go type bound to d and returns a
// pointer to it, ready for unmarshaling.
func (r *Resolver) NewInstance(d *descriptor.Descriptor) (any, error) {
	t, ok := r.GoTypeOf(d)
	if !ok {
		return nil, errors.NewNoBindingError(d.Name())
	}
	return reflect.New(t).Interface(), nil
}
