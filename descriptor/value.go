/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

// Value is a read-only view over a partially-decoded structured value. It is
// the only thing the resolver needs from the host's decoding pipeline.
type Value interface {
	// Field returns the raw value of the named field. The second return is
	// false when the field is absent entirely.
	Field(name string) (any, bool)
}

// MapValue adapts a generic decoded map (e.g. the result of a json.Unmarshal
// into map[string]any) to the Value interface.
type MapValue map[string]any

// Field implements Value.
func (m MapValue) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}
