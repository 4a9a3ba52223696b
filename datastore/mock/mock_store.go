/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the PolymorphicStore
// interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/descriptor"
	"github.com/suparena/typeresolve/storagemodels"
)

// Store is a mock implementation of datastore.PolymorphicStore. Items are
// seeded as raw field maps and decoded through the resolver on every read,
// exactly like a real backend would decode wire data.
type Store struct {
	mu       sync.RWMutex
	resolver *typeresolve.Resolver
	declared *descriptor.Descriptor
	items    map[string]map[string]any
	getErr   error
	queryErr error
}

// New creates a new mock Store decoding against the given declared root type.
func New(resolver *typeresolve.Resolver, declared *descriptor.Descriptor) *Store {
	return &Store{
		resolver: resolver,
		declared: declared,
		items:    make(map[string]map[string]any),
	}
}

// WithGetError makes GetOne return an error
func (m *Store) WithGetError(err error) *Store {
	m.getErr = err
	return m
}

// WithQueryError makes Query and Stream return an error
func (m *Store) WithQueryError(err error) *Store {
	m.queryErr = err
	return m
}

// Seed stores a raw item under the given keys.
func (m *Store) Seed(pk, sk string, fields map[string]any) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[pk+"|"+sk] = fields
	return m
}

// GetOne retrieves and decodes a single seeded item. It returns nil, nil when
// no item exists for the key.
func (m *Store) GetOne(ctx context.Context, pk, sk string) (any, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	m.mu.RLock()
	fields, ok := m.items[pk+"|"+sk]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	obj, _, err := m.decode(fields)
	return obj, err
}

// Query decodes all seeded items in key order. Query expressions are not
// interpreted; tests that need selective results should seed selectively.
func (m *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	var results []any
	for _, fields := range m.snapshot() {
		obj, _, err := m.decode(fields)
		if err != nil {
			return nil, err
		}
		results = append(results, obj)
	}
	return results, nil
}

// Stream decodes all seeded items in key order onto the returned channel.
func (m *Store) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)

	go func() {
		defer close(resultCh)

		if m.queryErr != nil {
			resultCh <- storagemodels.StreamResult{Error: m.queryErr}
			return
		}

		var index int64
		for _, fields := range m.snapshot() {
			obj, concrete, err := m.decode(fields)
			result := storagemodels.StreamResult{
				Item:  obj,
				Type:  concrete,
				Error: err,
				Meta:  storagemodels.StreamMeta{Index: index, PageNumber: 1},
			}
			index++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}
	}()

	return resultCh
}

// snapshot returns the seeded items in deterministic key order.
func (m *Store) snapshot() []map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.items[k])
	}
	return out
}

func (m *Store) decode(fields map[string]any) (any, *descriptor.Descriptor, error) {
	concrete, err := m.resolver.Resolve(m.declared, descriptor.MapValue(fields))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve concrete type for item: %w", err)
	}

	obj, err := m.resolver.NewInstance(concrete)
	if err != nil {
		return nil, nil, err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           obj,
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return nil, nil, fmt.Errorf("failed to decode item as %s: %w", concrete.Name(), err)
	}
	return obj, concrete, nil
}
