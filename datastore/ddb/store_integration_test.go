//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/suparena/typeresolve/datastore/testmodels"
	"github.com/suparena/typeresolve/storagemodels"
)

func getEventStore(t *testing.T) *PolymorphicStore {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	region := os.Getenv("AWS_REGION")
	tableName := os.Getenv("AWS_DDB_TABLE")

	if tableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	resolver, event := newEventResolver(t)
	store, err := NewPolymorphicStore(resolver, event, awsAccessKey, awsSecretKey, region, tableName)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestIntegrationGetOne(t *testing.T) {
	store := getEventStore(t)

	obj, err := store.GetOne(context.Background(), "CAMPAIGN#it", "EVENT#0001")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if obj == nil {
		t.Skip("No seed item present")
	}
	t.Logf("Decoded %T: %+v", obj, obj)
}

func TestIntegrationQueryMixedTypes(t *testing.T) {
	store := getEventStore(t)

	results, err := store.QueryTable().
		WithPartitionKey("CAMPAIGN#it").
		WithSortKeyPrefix("EVENT#").
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	for _, obj := range results {
		switch obj.(type) {
		case *testmodels.SinglesMatchEvent, *testmodels.DoublesMatchEvent,
			*testmodels.MatchEvent, *testmodels.RatingEvent:
			// expected shapes
		default:
			t.Errorf("Unexpected decoded type %T", obj)
		}
	}
}

func TestIntegrationStream(t *testing.T) {
	store := getEventStore(t)

	params, err := store.QueryTable().
		WithPartitionKey("CAMPAIGN#it").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var count int
	for result := range store.Stream(context.Background(), params,
		storagemodels.WithPageSize(10),
		storagemodels.WithBufferSize(16),
	) {
		if result.Error != nil {
			t.Fatalf("Stream item error: %v", result.Error)
		}
		if result.Type == nil {
			t.Error("Stream result missing resolved type")
		}
		count++
	}
	t.Logf("Streamed %d items", count)
}
