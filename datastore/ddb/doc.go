/*
Package ddb provides a DynamoDB implementation of the PolymorphicStore
interface.

The PolymorphicStore reads single-table designs where one table holds many
record shapes. Instead of fixing one Go type per store, each item's
discriminator attributes are resolved through the hierarchy registry and the
item is unmarshaled into the Go type bound to the resolved descriptor.

Decoding:

	store := ddb.NewPolymorphicStoreWithClient(resolver, eventDesc, client, "events")
	obj, err := store.GetOne(ctx, "CAMPAIGN#42", "EVENT#0001")
	// obj is *SinglesMatchEvent, *RatingEvent, ... depending on the record

Query building:

	results, err := store.QueryIndex("GSI1").
	    WithPartitionKey("CAMPAIGN#42").
	    WithSortKeyPrefix("EVENT#").
	    Execute(ctx)

Streaming:
The streaming API supports configurable options:

	results := store.Stream(ctx, params,
	    storagemodels.WithBufferSize(100),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	    storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) {
	        log.Printf("Processed %d items", p.ItemsProcessed)
	    }),
	)

For usage examples, see the integration tests and documentation.
*/
package ddb
