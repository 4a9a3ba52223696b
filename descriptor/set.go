/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"sort"
	"sync"

	"github.com/suparena/typeresolve/errors"
)

// Set is an interning catalog of type descriptors. It plays the role a
// reflection layer plays in hosts that have one: the side table is built
// explicitly, either in code or by the processor package from a declarative
// spec.
type Set struct {
	mu     sync.RWMutex
	byName map[string]*Descriptor
}

// NewSet creates an empty descriptor set.
func NewSet() *Set {
	return &Set{
		byName: make(map[string]*Descriptor),
	}
}

// DeclareOption customizes a type declaration.
type DeclareOption func(*Descriptor)

// WithResolveOptions declares the type as a discriminator root with the given
// resolution options.
func WithResolveOptions(opts ResolveOptions) DeclareOption {
	return func(d *Descriptor) {
		o := opts
		d.opts = &o
	}
}

// Declare interns a new type under the given name. parent is the immediate
// supertype, or nil for a root type. Declaring the same name twice is a
// configuration error.
func (s *Set) Declare(name string, parent *Descriptor, opts ...DeclareOption) (*Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return nil, errors.NewDuplicateTypeError(name)
	}

	d := &Descriptor{name: name, parent: parent}
	for _, opt := range opts {
		opt(d)
	}
	s.byName[name] = d
	return d, nil
}

// MustDeclare is like Declare but panics on error. Intended for init-time
// wiring where a duplicate declaration is a programming mistake.
func (s *Set) MustDeclare(name string, parent *Descriptor, opts ...DeclareOption) *Descriptor {
	d, err := s.Declare(name, parent, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the descriptor declared under name, if any.
func (s *Set) Lookup(name string) (*Descriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byName[name]
	return d, ok
}

// Names returns all declared type names in lexical order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of declared types.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}
