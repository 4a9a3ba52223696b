/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

// TrackByFunc transforms a raw discriminator value into the lookup key.
// It receives the raw field value (nil when the field is absent) and the full
// partially-decoded value. An empty return value means no usable key.
type TrackByFunc func(raw any, value Value) string

// ResolveOptions describe how subtype resolution works for a discriminator
// root type.
type ResolveOptions struct {
	// DiscriminatorField is the name of the field in the serialized value
	// that holds the raw discriminator.
	DiscriminatorField string

	// TrackBy, when set, derives the lookup key from the raw field value.
	// When nil the raw value is stringified and used as-is.
	TrackBy TrackByFunc

	// AllowSelf permits the root type itself to be a valid resolution
	// outcome.
	AllowSelf bool
}
