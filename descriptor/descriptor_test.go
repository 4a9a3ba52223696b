/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"testing"

	"github.com/suparena/typeresolve/errors"
)

func TestIsSubtypeOf(t *testing.T) {
	types := NewSet()
	base := types.MustDeclare("Base", nil)
	mid := types.MustDeclare("Mid", base)
	leaf := types.MustDeclare("Leaf", mid)
	other := types.MustDeclare("Other", nil)

	tests := []struct {
		name  string
		child *Descriptor
		of    *Descriptor
		want  bool
	}{
		{"direct child", mid, base, true},
		{"transitive child", leaf, base, true},
		{"leaf of mid", leaf, mid, true},
		{"self is not a proper subtype", base, base, false},
		{"parent of child", base, mid, false},
		{"unrelated roots", other, base, false},
		{"nil receiver", nil, base, false},
		{"nil other", leaf, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.child.IsSubtypeOf(tt.of); got != tt.want {
				t.Errorf("IsSubtypeOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetDeclare(t *testing.T) {
	types := NewSet()

	base, err := types.Declare("Base", nil, WithResolveOptions(ResolveOptions{
		DiscriminatorField: "type",
		AllowSelf:          true,
	}))
	if err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	opts, ok := base.ResolveOptions()
	if !ok {
		t.Fatal("Expected declared resolve options")
	}
	if opts.DiscriminatorField != "type" || !opts.AllowSelf {
		t.Errorf("Unexpected options: %+v", opts)
	}

	sub, err := types.Declare("Sub", base)
	if err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	if _, ok := sub.ResolveOptions(); ok {
		t.Error("Sub should declare no resolve options")
	}
	if sub.Parent() != base {
		t.Errorf("Parent = %v, want Base", sub.Parent())
	}

	// Duplicate names are configuration errors.
	if _, err := types.Declare("Base", nil); err == nil {
		t.Fatal("Expected duplicate declaration error")
	} else if !errors.IsConfiguration(err) {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestSetLookupAndNames(t *testing.T) {
	types := NewSet()
	types.MustDeclare("B", nil)
	types.MustDeclare("A", nil)

	if d, ok := types.Lookup("A"); !ok || d.Name() != "A" {
		t.Errorf("Lookup(A) = %v, %v", d, ok)
	}
	if _, ok := types.Lookup("missing"); ok {
		t.Error("Lookup should miss for undeclared names")
	}

	names := types.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Names = %v, want [A B]", names)
	}
	if types.Len() != 2 {
		t.Errorf("Len = %d, want 2", types.Len())
	}
}

func TestMapValue(t *testing.T) {
	v := MapValue{"type": "x", "nothing": nil}

	if raw, ok := v.Field("type"); !ok || raw != "x" {
		t.Errorf("Field(type) = %v, %v", raw, ok)
	}
	if raw, ok := v.Field("nothing"); !ok || raw != nil {
		t.Errorf("Field(nothing) = %v, %v; a present null field is still present", raw, ok)
	}
	if _, ok := v.Field("absent"); ok {
		t.Error("Field(absent) should report absence")
	}
}
