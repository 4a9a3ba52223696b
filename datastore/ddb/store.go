/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typeresolve"
	"github.com/suparena/typeresolve/descriptor"
)

// PolymorphicStore implements datastore.PolymorphicStore over a DynamoDB
// table holding heterogeneous records. Every item read is decoded into the
// concrete Go type resolved from its discriminator fields, starting from the
// declared root type for the table.
type PolymorphicStore struct {
	client    *sdk.Client
	tableName string
	declared  *descriptor.Descriptor
	decoder   *Decoder
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewPolymorphicStore constructs a store over the given table. declared is
// the root type every item in the table is decoded against.
func NewPolymorphicStore(resolver *typeresolve.Resolver, declared *descriptor.Descriptor, awsAccessKey, awsSecretKey, awsRegion, tableName string) (*PolymorphicStore, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewPolymorphicStoreWithClient(resolver, declared, client, tableName), nil
}

// NewPolymorphicStoreWithClient constructs a store using an existing client.
func NewPolymorphicStoreWithClient(resolver *typeresolve.Resolver, declared *descriptor.Descriptor, client *sdk.Client, tableName string) *PolymorphicStore {
	return &PolymorphicStore{
		client:    client,
		tableName: tableName,
		declared:  declared,
		decoder:   NewDecoder(resolver),
	}
}

// GetOne retrieves a single item by its primary key and decodes it into the
// concrete type resolved from its discriminator. It returns nil, nil when no
// item is found.
func (s *PolymorphicStore) GetOne(ctx context.Context, pk, sk string) (any, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		// Not found: return nil, nil
		return nil, nil
	}

	obj, _, err := s.decoder.DecodeItem(s.declared, out.Item)
	if err != nil {
		return nil, err
	}
	return obj, nil
}
