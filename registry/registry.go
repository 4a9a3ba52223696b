/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"

	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/errors"
)

// Registration declares one hierarchy level, or part of one: a parent type
// and the children reachable from it by discriminator key. Registrations for
// the same parent merge; later keys win on collision.
type Registration struct {
	// Parent is the declared (possibly abstract) type.
	Parent *descriptor.Descriptor

	// Children maps discriminator keys to concrete subtypes. A child may be
	// Parent itself when the parent's options set AllowSelf.
	Children map[string]*descriptor.Descriptor

	// DiscriminatorHandler, when set, is the type whose resolve options
	// govern this level instead of Parent. It is consulted only on the first
	// registration for Parent; merges keep the options already in effect.
	DiscriminatorHandler *descriptor.Descriptor
}

// processedRegistration is the merged state for one parent type.
type processedRegistration struct {
	parent   *descriptor.Descriptor
	children map[string]*descriptor.Descriptor
	opts     descriptor.ResolveOptions

	// selfDiscriminator records whether the parent appears among its own
	// children. It only ever accumulates: registrations add children, never
	// remove them.
	selfDiscriminator bool
}

func (p *processedRegistration) clone() *processedRegistration {
	children := make(map[string]*descriptor.Descriptor, len(p.children))
	for key, child := range p.children {
		children[key] = child
	}
	return &processedRegistration{
		parent:            p.parent,
		children:          children,
		opts:              p.opts,
		selfDiscriminator: p.selfDiscriminator,
	}
}

// Registry maps parent types to their merged hierarchy registrations and
// resolves concrete types for values at decode time. A single long-lived
// Registry is safe for concurrent use: Add serializes against everything,
// Resolve calls run concurrently with each other.
type Registry struct {
	mu      sync.RWMutex
	entries map[*descriptor.Descriptor]*processedRegistration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[*descriptor.Descriptor]*processedRegistration),
	}
}

// Add declares or extends parent/child relationships, validating each
// registration. Nothing is committed unless every registration in the call is
// valid, so a failed Add leaves the registry exactly as it was.
func (r *Registry) Add(regs ...Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[*descriptor.Descriptor]*processedRegistration)

	for _, reg := range regs {
		entry := staged[reg.Parent]
		if entry == nil {
			if existing, ok := r.entries[reg.Parent]; ok {
				entry = existing.clone()
			}
		}
		if entry == nil {
			handler := reg.DiscriminatorHandler
			if handler == nil {
				handler = reg.Parent
			}
			opts, declared := handler.ResolveOptions()
			if !declared {
				return errors.NewMissingOptionsError(handler.Name())
			}
			entry = &processedRegistration{
				parent:   reg.Parent,
				children: make(map[string]*descriptor.Descriptor, len(reg.Children)),
				opts:     opts,
			}
		}

		// Children are validated on every call, merges included.
		for key, child := range reg.Children {
			if child == reg.Parent {
				if !entry.opts.AllowSelf {
					return errors.NewSelfResolutionError(reg.Parent.Name())
				}
				entry.selfDiscriminator = true
			} else if !child.IsSubtypeOf(reg.Parent) {
				return errors.NewInvalidChildError(child.Name(), reg.Parent.Name())
			}
			entry.children[key] = child
		}

		staged[reg.Parent] = entry
	}

	for parent, entry := range staged {
		r.entries[parent] = entry
	}
	return nil
}

// Resolve determines the concrete type for a value whose declared type is
// declared. Unregistered types resolve to themselves. Resolution walks the
// hierarchy one level at a time, re-reading the same value at each level, so
// a single record can carry discriminators for several nested abstraction
// levels.
func (r *Registry) Resolve(declared *descriptor.Descriptor, value descriptor.Value) (*descriptor.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findClass(declared, value)
}

func (r *Registry) findClass(declared *descriptor.Descriptor, value descriptor.Value) (*descriptor.Descriptor, error) {
	entry, ok := r.entries[declared]
	if !ok {
		return declared, nil
	}

	var raw any
	if value != nil {
		raw, _ = value.Field(entry.opts.DiscriminatorField)
	}

	key, ok := discriminatorKey(entry.opts, raw, value)
	if !ok {
		// No usable discriminator. The declared type itself is the answer
		// only when it may resolve to itself and no child explicitly claims
		// its slot.
		if entry.opts.AllowSelf && !entry.selfDiscriminator {
			return declared, nil
		}
		return nil, errors.NewMissingDiscriminatorError(declared.Name())
	}

	child, ok := entry.children[key]
	if !ok {
		return nil, errors.NewUnknownDiscriminatorError(declared.Name(), key)
	}
	if child == declared {
		// Explicit self-discriminator: terminal.
		return child, nil
	}
	return r.findClass(child, value)
}

// ChildrenOf returns a snapshot of the children registered under parent,
// keyed by discriminator value. The snapshot is for diagnostics; mutating it
// does not affect the registry.
func (r *Registry) ChildrenOf(parent *descriptor.Descriptor) map[string]*descriptor.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[parent]
	if !ok {
		return nil
	}
	children := make(map[string]*descriptor.Descriptor, len(entry.children))
	for key, child := range entry.children {
		children[key] = child
	}
	return children
}

// Roots returns the registered parent types in lexical name order.
func (r *Registry) Roots() []*descriptor.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roots := make([]*descriptor.Descriptor, 0, len(r.entries))
	for parent := range r.entries {
		roots = append(roots, parent)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Name() < roots[j].Name() })
	return roots
}

// Len returns the number of registered parent types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
