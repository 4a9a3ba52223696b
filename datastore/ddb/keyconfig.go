/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

// IndexKeyConfig holds the key attribute names for a table or secondary index
type IndexKeyConfig struct {
	// IndexName is the actual index name in DynamoDB ("" for the base table)
	IndexName string
	// PartitionKeyName is the partition key attribute name (e.g., "PK1")
	PartitionKeyName string
	// SortKeyName is the sort key attribute name (e.g., "SK1")
	SortKeyName string
}

// DefaultIndexKeyConfigs holds the key configurations for the base table and
// the conventional single-table-design GSIs.
var DefaultIndexKeyConfigs = map[string]IndexKeyConfig{
	"": {
		IndexName:        "",
		PartitionKeyName: "PK",
		SortKeyName:      "SK",
	},
	"GSI1": {
		IndexName:        "GSI1",
		PartitionKeyName: "PK1",
		SortKeyName:      "SK1",
	},
}

// GetIndexKeyConfig returns the key configuration for a given index name
func GetIndexKeyConfig(indexName string) (IndexKeyConfig, bool) {
	config, ok := DefaultIndexKeyConfigs[indexName]
	return config, ok
}
