/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typeresolve/storagemodels"
)

// QueryBuilder provides a fluent interface for building queries against a
// polymorphic table or one of its secondary indexes.
type QueryBuilder struct {
	store      *PolymorphicStore
	keys       IndexKeyConfig
	pkValue    string
	skValue    string
	skOperator string // "=", "begins_with", ">", "<", ">=", "<=", "BETWEEN"
	skUpper    string
	filters    []string
	filterVals map[string]types.AttributeValue
	limit      *int32
	buildErr   error
}

// QueryTable creates a query builder over the base table keys.
func (s *PolymorphicStore) QueryTable() *QueryBuilder {
	return s.newBuilder("")
}

// QueryIndex creates a query builder over a secondary index.
func (s *PolymorphicStore) QueryIndex(indexName string) *QueryBuilder {
	return s.newBuilder(indexName)
}

func (s *PolymorphicStore) newBuilder(indexName string) *QueryBuilder {
	b := &QueryBuilder{
		store:      s,
		filterVals: make(map[string]types.AttributeValue),
	}
	keys, ok := GetIndexKeyConfig(indexName)
	if !ok {
		b.buildErr = fmt.Errorf("no key configuration for index %q", indexName)
		return b
	}
	b.keys = keys
	return b
}

// WithPartitionKey sets the partition key value
func (b *QueryBuilder) WithPartitionKey(value string) *QueryBuilder {
	b.pkValue = value
	return b
}

// WithSortKey sets the sort key value with equals operator
func (b *QueryBuilder) WithSortKey(value string) *QueryBuilder {
	b.skValue = value
	b.skOperator = "="
	return b
}

// WithSortKeyPrefix sets the sort key to use begins_with operator
func (b *QueryBuilder) WithSortKeyPrefix(prefix string) *QueryBuilder {
	b.skValue = prefix
	b.skOperator = "begins_with"
	return b
}

// WithSortKeyGreaterThan sets the sort key to use > operator
func (b *QueryBuilder) WithSortKeyGreaterThan(value string) *QueryBuilder {
	b.skValue = value
	b.skOperator = ">"
	return b
}

// WithSortKeyLessThan sets the sort key to use < operator
func (b *QueryBuilder) WithSortKeyLessThan(value string) *QueryBuilder {
	b.skValue = value
	b.skOperator = "<"
	return b
}

// WithSortKeyBetween sets the sort key to use BETWEEN operator
func (b *QueryBuilder) WithSortKeyBetween(start, end string) *QueryBuilder {
	b.skValue = start
	b.skUpper = end
	b.skOperator = "BETWEEN"
	return b
}

// WithFilter adds a filter expression
func (b *QueryBuilder) WithFilter(expression string, values map[string]types.AttributeValue) *QueryBuilder {
	b.filters = append(b.filters, expression)
	for k, v := range values {
		b.filterVals[k] = v
	}
	return b
}

// WithLimit sets the query limit
func (b *QueryBuilder) WithLimit(limit int32) *QueryBuilder {
	b.limit = aws.Int32(limit)
	return b
}

// Build constructs the final query parameters
func (b *QueryBuilder) Build() (*storagemodels.QueryParams, error) {
	if b.buildErr != nil {
		return nil, b.buildErr
	}
	if b.pkValue == "" {
		return nil, fmt.Errorf("partition key value is required")
	}

	params := &storagemodels.QueryParams{
		TableName:                 b.store.tableName,
		ExpressionAttributeValues: make(map[string]types.AttributeValue),
		Limit:                     b.limit,
	}

	keyConditions := []string{fmt.Sprintf("%s = :pk", b.keys.PartitionKeyName)}
	params.ExpressionAttributeValues[":pk"] = &types.AttributeValueMemberS{Value: b.pkValue}

	if b.skValue != "" {
		sk := b.keys.SortKeyName
		switch b.skOperator {
		case "begins_with":
			keyConditions = append(keyConditions, fmt.Sprintf("begins_with(%s, :sk)", sk))
		case "BETWEEN":
			keyConditions = append(keyConditions, fmt.Sprintf("%s BETWEEN :sk AND :sk2", sk))
			params.ExpressionAttributeValues[":sk2"] = &types.AttributeValueMemberS{Value: b.skUpper}
		case "=", ">", "<", ">=", "<=":
			keyConditions = append(keyConditions, fmt.Sprintf("%s %s :sk", sk, b.skOperator))
		default:
			return nil, fmt.Errorf("unsupported sort key operator %q", b.skOperator)
		}
		params.ExpressionAttributeValues[":sk"] = &types.AttributeValueMemberS{Value: b.skValue}
	}

	params.KeyConditionExpression = strings.Join(keyConditions, " AND ")

	if b.keys.IndexName != "" {
		params.IndexName = aws.String(b.keys.IndexName)
	}

	if len(b.filters) > 0 {
		params.FilterExpression = aws.String(strings.Join(b.filters, " AND "))
		for k, v := range b.filterVals {
			params.ExpressionAttributeValues[k] = v
		}
	}

	return params, nil
}

// Execute runs the query and returns decoded results
func (b *QueryBuilder) Execute(ctx context.Context) ([]any, error) {
	params, err := b.Build()
	if err != nil {
		return nil, err
	}
	return b.store.Query(ctx, params)
}

// Stream executes the query as a stream
func (b *QueryBuilder) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	params, err := b.Build()
	if err != nil {
		ch := make(chan storagemodels.StreamResult, 1)
		ch <- storagemodels.StreamResult{
			Error: fmt.Errorf("failed to build query: %w", err),
		}
		close(ch)
		return ch
	}
	return b.store.Stream(ctx, params, opts...)
}
