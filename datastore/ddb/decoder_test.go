/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/datastore/testmodels"
	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/errors"
	"github.com/suparena/typeresolve/registry"
)

// newEventResolver wires the testmodels event hierarchy:
// Event discriminates on "Type", MatchEvent further on "Sub".
func newEventResolver(t *testing.T) (*typeresolve.Resolver, *descriptor.Descriptor) {
	t.Helper()

	r := typeresolve.New()
	event := r.Types().MustDeclare("Event", nil, descriptor.WithResolveOptions(descriptor.ResolveOptions{
		DiscriminatorField: "Type",
	}))
	match := r.Types().MustDeclare("MatchEvent", event, descriptor.WithResolveOptions(descriptor.ResolveOptions{
		DiscriminatorField: "Sub",
		AllowSelf:          true,
	}))
	singles := r.Types().MustDeclare("SinglesMatchEvent", match)
	doubles := r.Types().MustDeclare("DoublesMatchEvent", match)
	rating := r.Types().MustDeclare("RatingEvent", event)

	if err := r.Register(
		registry.Registration{
			Parent: event,
			Children: map[string]*descriptor.Descriptor{
				"match":  match,
				"rating": rating,
			},
		},
		registry.Registration{
			Parent: match,
			Children: map[string]*descriptor.Descriptor{
				"singles": singles,
				"doubles": doubles,
			},
		},
	); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	typeresolve.Bind[testmodels.Event](r, event)
	typeresolve.Bind[testmodels.MatchEvent](r, match)
	typeresolve.Bind[testmodels.SinglesMatchEvent](r, singles)
	typeresolve.Bind[testmodels.DoublesMatchEvent](r, doubles)
	typeresolve.Bind[testmodels.RatingEvent](r, rating)

	return r, event
}

func s(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func TestDecodeItemMultiLevel(t *testing.T) {
	r, event := newEventResolver(t)
	decoder := NewDecoder(r)

	item := map[string]types.AttributeValue{
		"Id":      s("evt-1"),
		"Type":    s("match"),
		"Sub":     s("singles"),
		"Court":   s("3"),
		"PlayerA": s("alice"),
		"PlayerB": s("bob"),
	}

	obj, concrete, err := decoder.DecodeItem(event, item)
	if err != nil {
		t.Fatalf("DecodeItem failed: %v", err)
	}
	if concrete.Name() != "SinglesMatchEvent" {
		t.Errorf("Resolved %s, want SinglesMatchEvent", concrete.Name())
	}

	singles, ok := obj.(*testmodels.SinglesMatchEvent)
	if !ok {
		t.Fatalf("Decoded %T, want *testmodels.SinglesMatchEvent", obj)
	}
	if singles.PlayerA != "alice" || singles.PlayerB != "bob" {
		t.Errorf("Unexpected players: %+v", singles)
	}
	if singles.Court != "3" {
		t.Errorf("Court = %q, want 3", singles.Court)
	}
}

func TestDecodeItemSingleLevel(t *testing.T) {
	r, event := newEventResolver(t)
	decoder := NewDecoder(r)

	item := map[string]types.AttributeValue{
		"Id":     s("evt-2"),
		"Type":   s("rating"),
		"Player": s("carol"),
		"Delta":  &types.AttributeValueMemberN{Value: "25"},
	}

	obj, concrete, err := decoder.DecodeItem(event, item)
	if err != nil {
		t.Fatalf("DecodeItem failed: %v", err)
	}
	if concrete.Name() != "RatingEvent" {
		t.Errorf("Resolved %s, want RatingEvent", concrete.Name())
	}

	rating, ok := obj.(*testmodels.RatingEvent)
	if !ok {
		t.Fatalf("Decoded %T, want *testmodels.RatingEvent", obj)
	}
	if rating.Player != "carol" || rating.Delta != 25 {
		t.Errorf("Unexpected rating event: %+v", rating)
	}
}

func TestDecodeItemPartialHierarchy(t *testing.T) {
	r, event := newEventResolver(t)
	decoder := NewDecoder(r)

	// A match record with no second-level discriminator stops at MatchEvent
	// because MatchEvent allows self-resolution.
	item := map[string]types.AttributeValue{
		"Id":   s("evt-3"),
		"Type": s("match"),
	}

	obj, concrete, err := decoder.DecodeItem(event, item)
	if err != nil {
		t.Fatalf("DecodeItem failed: %v", err)
	}
	if concrete.Name() != "MatchEvent" {
		t.Errorf("Resolved %s, want MatchEvent", concrete.Name())
	}
	if _, ok := obj.(*testmodels.MatchEvent); !ok {
		t.Fatalf("Decoded %T, want *testmodels.MatchEvent", obj)
	}
}

func TestDecodeItemErrors(t *testing.T) {
	r, event := newEventResolver(t)
	decoder := NewDecoder(r)

	t.Run("UnknownDiscriminator", func(t *testing.T) {
		item := map[string]types.AttributeValue{
			"Id":   s("evt-4"),
			"Type": s("bogus"),
		}
		_, _, err := decoder.DecodeItem(event, item)
		if err == nil {
			t.Fatal("Expected resolution error")
		}
		if !errors.IsResolution(err) {
			t.Errorf("Expected resolution error, got %v", err)
		}
	})

	t.Run("MissingDiscriminator", func(t *testing.T) {
		item := map[string]types.AttributeValue{
			"Id": s("evt-5"),
		}
		_, _, err := decoder.DecodeItem(event, item)
		if err == nil {
			t.Fatal("Expected resolution error: Event does not allow self")
		}
		if !errors.IsResolution(err) {
			t.Errorf("Expected resolution error, got %v", err)
		}
	})

	t.Run("UnboundDescriptor", func(t *testing.T) {
		r2 := typeresolve.New()
		base := r2.Types().MustDeclare("Base", nil, descriptor.WithResolveOptions(descriptor.ResolveOptions{
			DiscriminatorField: "Type",
			AllowSelf:          true,
		}))
		// No Go type bound for Base.
		_, _, err := NewDecoder(r2).DecodeItem(base, map[string]types.AttributeValue{})
		// Base is unregistered, resolves to itself, and has no binding.
		if err == nil {
			t.Fatal("Expected no-binding error")
		}
		if !errors.IsNoBinding(err) {
			t.Errorf("Expected no-binding error, got %v", err)
		}
	})
}
