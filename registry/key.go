/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"strconv"

	"github.com/suparena/typeresolve/descriptor"
)

// discriminatorKey derives the effective lookup key from the raw field value.
// With a TrackBy transform the transform output is authoritative and an empty
// string means no key; otherwise the raw value is stringified, with nil or
// absent values yielding no key.
func discriminatorKey(opts descriptor.ResolveOptions, raw any, value descriptor.Value) (string, bool) {
	if opts.TrackBy != nil {
		key := opts.TrackBy(raw, value)
		return key, key != ""
	}
	if raw == nil {
		return "", false
	}
	return stringifyKey(raw), true
}

func stringifyKey(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		// JSON decoding yields float64 for all numbers; integral values must
		// stringify without a fractional part.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
