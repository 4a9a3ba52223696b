/*
Package storagemodels defines the data structures shared by TypeResolve's
storage-facing decoding layers.

Key Types:

QueryParams:
Parameters for querying a polymorphic table:

	params := &QueryParams{
	    TableName:              "my-table",
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "EVENT#123"},
	    },
	    IndexName: aws.String("GSI1"),
	    Limit:     aws.Int32(100),
	}

StreamResult:
Results from streaming decode operations. Because items in one table resolve
to different concrete types, Item is typed any and Type carries the resolved
descriptor:

	type StreamResult struct {
	    Item  any                             // Decoded concrete value
	    Type  *descriptor.Descriptor          // Resolved type
	    Raw   map[string]types.AttributeValue // Raw DynamoDB attributes
	    Error error                           // Item-specific error, if any
	    Meta  StreamMeta                      // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
