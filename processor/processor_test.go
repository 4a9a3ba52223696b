/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/descriptor"
)

const eventHierarchy = `
types:
  - name: Event
    discriminator: Type
  - name: MatchEvent
    parent: Event
    discriminator: Sub
    allowSelf: true
  - name: SinglesMatchEvent
    parent: MatchEvent
  - name: RatingEvent
    parent: Event

hierarchies:
  - parent: Event
    children:
      match: MatchEvent
      rating: RatingEvent
  - parent: MatchEvent
    children:
      singles: SinglesMatchEvent
`

func TestParseAndApply(t *testing.T) {
	spec, err := Parse([]byte(eventHierarchy))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(spec.Types) != 4 {
		t.Fatalf("Parsed %d types, want 4", len(spec.Types))
	}

	r := typeresolve.New()
	if err := spec.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	event, ok := r.Types().Lookup("Event")
	if !ok {
		t.Fatal("Event not declared")
	}

	concrete, err := r.Resolve(event, descriptor.MapValue{
		"Type": "match",
		"Sub":  "singles",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if concrete.Name() != "SinglesMatchEvent" {
		t.Errorf("Resolved %s, want SinglesMatchEvent", concrete.Name())
	}

	// MatchEvent allows self, so a bare match record stops there.
	concrete, err = r.Resolve(event, descriptor.MapValue{"Type": "match"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if concrete.Name() != "MatchEvent" {
		t.Errorf("Resolved %s, want MatchEvent", concrete.Name())
	}
}

func TestApplyWithHandler(t *testing.T) {
	// Payload carries no options of its own; the hierarchy names Envelope as
	// the discriminator handler for the level.
	spec, err := Parse([]byte(`
types:
  - name: Envelope
    discriminator: Kind
  - name: Payload
  - name: TextPayload
    parent: Payload

hierarchies:
  - parent: Payload
    handler: Envelope
    children:
      text: TextPayload
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	r := typeresolve.New()
	if err := spec.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	payload, _ := r.Types().Lookup("Payload")
	concrete, err := r.Resolve(payload, descriptor.MapValue{"Kind": "text"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if concrete.Name() != "TextPayload" {
		t.Errorf("Resolved %s, want TextPayload", concrete.Name())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hierarchy.yaml")
	if err := os.WriteFile(path, []byte(eventHierarchy), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(spec.Hierarchies) != 2 {
		t.Errorf("Loaded %d hierarchies, want 2", len(spec.Hierarchies))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("InvalidYAML", func(t *testing.T) {
		if _, err := Parse([]byte("types: [unclosed")); err == nil {
			t.Fatal("Expected parse error")
		}
	})

	t.Run("NoTypes", func(t *testing.T) {
		if _, err := Parse([]byte("hierarchies: []")); err == nil {
			t.Fatal("Expected error for empty type list")
		}
	})
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"UndeclaredParent",
			`
types:
  - name: Child
    parent: Ghost
`,
		},
		{
			"UndeclaredChildInHierarchy",
			`
types:
  - name: Event
    discriminator: Type
hierarchies:
  - parent: Event
    children:
      x: Ghost
`,
		},
		{
			"MissingTypeName",
			`
types:
  - parent: Event
`,
		},
		{
			"SelfWithoutAllowSelf",
			`
types:
  - name: Event
    discriminator: Type
hierarchies:
  - parent: Event
    children:
      event: Event
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if err := spec.Apply(typeresolve.New()); err == nil {
				t.Fatal("Expected Apply to fail")
			}
		})
	}
}

func TestApplyIsAtomicForHierarchies(t *testing.T) {
	spec, err := Parse([]byte(`
types:
  - name: Event
    discriminator: Type
  - name: MatchEvent
    parent: Event
  - name: Other
hierarchies:
  - parent: Event
    children:
      match: MatchEvent
  - parent: Event
    children:
      other: Other
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	r := typeresolve.New()
	if err := spec.Apply(r); err == nil {
		t.Fatal("Expected Apply to fail: Other is not a subtype of Event")
	}
	if r.Registry().Len() != 0 {
		t.Errorf("Registry has %d entries after failed Apply, want 0", r.Registry().Len())
	}
}
