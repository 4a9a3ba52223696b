/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ItemValue adapts a raw DynamoDB item to the descriptor.Value interface so
// the resolver can read discriminator fields straight off the wire form,
// before any concrete type has been chosen.
type ItemValue map[string]types.AttributeValue

// Field implements descriptor.Value.
func (v ItemValue) Field(name string) (any, bool) {
	av, ok := v[name]
	if !ok {
		return nil, false
	}
	return attributeToValue(av), true
}

// attributeToValue converts a single attribute to a plain Go value. Number
// attributes keep their decimal string form, which is exactly what a
// discriminator key lookup needs.
func attributeToValue(av types.AttributeValue) any {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value

	case *types.AttributeValueMemberN:
		return tv.Value

	case *types.AttributeValueMemberBOOL:
		return tv.Value

	case *types.AttributeValueMemberNULL:
		return nil

	case *types.AttributeValueMemberB:
		return tv.Value

	case *types.AttributeValueMemberSS:
		return tv.Value

	case *types.AttributeValueMemberNS:
		return tv.Value

	case *types.AttributeValueMemberL:
		out := make([]any, 0, len(tv.Value))
		for _, item := range tv.Value {
			out = append(out, attributeToValue(item))
		}
		return out

	case *types.AttributeValueMemberM:
		out := make(map[string]any, len(tv.Value))
		for k, item := range tv.Value {
			out[k] = attributeToValue(item)
		}
		return out

	default:
		return nil
	}
}
