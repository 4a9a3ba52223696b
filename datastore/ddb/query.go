/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/typeresolve/errors"
	"github.com/suparena/typeresolve/storagemodels"
)

// Query performs a query against the DynamoDB table using the provided
// parameters. Each returned item is decoded into the concrete type resolved
// from its discriminator fields. Items whose resolved descriptor has no Go
// type bound fall back to a generic map so a mixed table stays readable while
// bindings are rolled out.
func (s *PolymorphicStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	input := &dynamodb.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
	out, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	var results []any
	for _, item := range out.Items {
		obj, _, err := s.decoder.DecodeItem(s.declared, item)
		if err != nil {
			if errors.IsNoBinding(err) {
				var generic map[string]interface{}
				if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
					return nil, fmt.Errorf("failed to unmarshal generic item: %w", err)
				}
				results = append(results, generic)
				continue
			}
			return nil, err
		}
		results = append(results, obj)
	}

	return results, nil
}
