/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/typeresolve/storagemodels"
)

// PolymorphicStore reads records whose concrete type is not known until the
// discriminator in each record has been resolved. Implementations decode every
// returned item into the Go type bound to its resolved descriptor.
type PolymorphicStore interface {
	// GetOne retrieves and decodes a single item. It returns nil, nil when no
	// item exists for the key.
	GetOne(ctx context.Context, pk, sk string) (any, error)

	// Query retrieves and decodes all items matching the parameters.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)

	// Stream retrieves and decodes items page by page, delivering results on
	// the returned channel until the query is exhausted, an unrecoverable
	// error occurs, or ctx is canceled.
	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
}
