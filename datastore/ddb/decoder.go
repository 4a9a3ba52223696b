/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/descriptor"
)

// Decoder turns raw DynamoDB items into concrete Go values. For each item it
// resolves the concrete descriptor from the item's discriminator fields,
// instantiates the bound Go type, and unmarshals the attributes into it.
type Decoder struct {
	resolver *typeresolve.Resolver
}

// NewDecoder creates a Decoder backed by the given resolver.
func NewDecoder(resolver *typeresolve.Resolver) *Decoder {
	return &Decoder{resolver: resolver}
}

// DecodeItem decodes one item whose declared type is declared. It returns a
// pointer to the concrete Go value together with the resolved descriptor.
func (d *Decoder) DecodeItem(declared *descriptor.Descriptor, item map[string]types.AttributeValue) (any, *descriptor.Descriptor, error) {
	concrete, err := d.resolver.Resolve(declared, ItemValue(item))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve concrete type for item: %w", err)
	}

	obj, err := d.resolver.NewInstance(concrete)
	if err != nil {
		return nil, nil, err
	}

	if err := attributevalue.UnmarshalMap(item, obj); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal item as %s: %w", concrete.Name(), err)
	}
	return obj, concrete, nil
}
