/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/registry"
)

// TypeSpec declares one type in a hierarchy file.
type TypeSpec struct {
	Name          string `yaml:"name"`
	Parent        string `yaml:"parent,omitempty"`
	Discriminator string `yaml:"discriminator,omitempty"`
	AllowSelf     bool   `yaml:"allowSelf,omitempty"`
}

// HierarchyEntry maps one parent's discriminator values to child type names.
// Handler optionally names the type whose resolve options govern this level
// instead of the parent's own.
type HierarchyEntry struct {
	Parent   string            `yaml:"parent"`
	Handler  string            `yaml:"handler,omitempty"`
	Children map[string]string `yaml:"children"`
}

// HierarchySpec is the root document of a hierarchy file.
type HierarchySpec struct {
	Types       []TypeSpec       `yaml:"types"`
	Hierarchies []HierarchyEntry `yaml:"hierarchies"`
}

// Parse decodes a hierarchy spec from YAML bytes.
func Parse(data []byte) (*HierarchySpec, error) {
	var spec HierarchySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse hierarchy spec: %w", err)
	}
	if len(spec.Types) == 0 {
		return nil, fmt.Errorf("hierarchy spec declares no types")
	}
	return &spec, nil
}

// Load reads and parses a hierarchy spec from a file.
func Load(path string) (*HierarchySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy spec %s: %w", path, err)
	}
	return Parse(data)
}

// Apply declares the spec's types on the resolver and registers its
// hierarchies. Types must be declared before they are referenced as a
// parent, so list parents before children in the file.
func (s *HierarchySpec) Apply(r *typeresolve.Resolver) error {
	for _, ts := range s.Types {
		if ts.Name == "" {
			return fmt.Errorf("type entry is missing a name")
		}

		var parent *descriptor.Descriptor
		if ts.Parent != "" {
			p, ok := r.Types().Lookup(ts.Parent)
			if !ok {
				return fmt.Errorf("type %q references undeclared parent %q", ts.Name, ts.Parent)
			}
			parent = p
		}

		var opts []descriptor.DeclareOption
		if ts.Discriminator != "" || ts.AllowSelf {
			opts = append(opts, descriptor.WithResolveOptions(descriptor.ResolveOptions{
				DiscriminatorField: ts.Discriminator,
				AllowSelf:          ts.AllowSelf,
			}))
		}

		if _, err := r.Types().Declare(ts.Name, parent, opts...); err != nil {
			return err
		}
	}

	regs := make([]registry.Registration, 0, len(s.Hierarchies))
	for _, h := range s.Hierarchies {
		parent, ok := r.Types().Lookup(h.Parent)
		if !ok {
			return fmt.Errorf("hierarchy references undeclared parent %q", h.Parent)
		}

		var handler *descriptor.Descriptor
		if h.Handler != "" {
			handler, ok = r.Types().Lookup(h.Handler)
			if !ok {
				return fmt.Errorf("hierarchy for %q references undeclared handler %q", h.Parent, h.Handler)
			}
		}

		children := make(map[string]*descriptor.Descriptor, len(h.Children))
		for key, name := range h.Children {
			child, ok := r.Types().Lookup(name)
			if !ok {
				return fmt.Errorf("hierarchy for %q references undeclared child %q", h.Parent, name)
			}
			children[key] = child
		}

		regs = append(regs, registry.Registration{
			Parent:               parent,
			Children:             children,
			DiscriminatorHandler: handler,
		})
	}

	return r.Register(regs...)
}

// Main is the entry point for the hierarchymap command. It loads the
// hierarchy file named on the command line, applies it to a fresh
// resolver, and prints the resulting hierarchy.
func Main() {
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: hierarchymap [flags] <hierarchy.yaml>")
		os.Exit(2)
	}

	spec, err := Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hierarchymap: %v\n", err)
		os.Exit(1)
	}

	r := typeresolve.New()
	if err := spec.Apply(r); err != nil {
		fmt.Fprintf(os.Stderr, "hierarchymap: %v\n", err)
		os.Exit(1)
	}

	printHierarchy(os.Stdout, r)
}

func printHierarchy(w *os.File, r *typeresolve.Resolver) {
	for _, root := range r.Registry().Roots() {
		// Mid-hierarchy parents are printed as part of their root's subtree.
		if hasRegisteredAncestor(r, root) {
			continue
		}
		fmt.Fprintln(w, root.Name())
		printChildren(w, r, root, 1)
	}
}

func hasRegisteredAncestor(r *typeresolve.Resolver, d *descriptor.Descriptor) bool {
	for p := d.Parent(); p != nil; p = p.Parent() {
		if len(r.Registry().ChildrenOf(p)) > 0 {
			return true
		}
	}
	return false
}

func printChildren(w *os.File, r *typeresolve.Resolver, d *descriptor.Descriptor, depth int) {
	children := r.Registry().ChildrenOf(d)
	keys := make([]string, 0, len(children))
	for key := range children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		child := children[key]
		for i := 0; i < depth; i++ {
			fmt.Fprint(w, "  ")
		}
		if child == d {
			fmt.Fprintf(w, "%s -> (self)\n", key)
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", key, child.Name())
		printChildren(w, r, child, depth+1)
	}
}
