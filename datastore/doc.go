/*
Package datastore defines the storage-facing interface for polymorphic decode.

The main interface is PolymorphicStore, which reads heterogeneous records and
decodes each into the concrete Go type resolved from its discriminator:

	type PolymorphicStore interface {
	    GetOne(ctx context.Context, pk, sk string) (any, error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
	}

Implementations:
  - ddb: DynamoDB implementation for single-table designs
  - mock: In-memory mock implementation for testing

Only the read paths appear here: resolution happens when records are decoded,
so writes are the host application's concern.
*/
package datastore
