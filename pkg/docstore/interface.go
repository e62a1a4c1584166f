package docstore

import "context"

// Store is a narrow document store keyed by (collection, id). Documents are
// stored as JSON; Get unmarshals into out.
type Store interface {
	// Put writes doc under collection/id, overwriting any existing document.
	Put(ctx context.Context, collection, id string, doc any) error

	// Get reads collection/id into out. Returns ErrNotFound when absent.
	Get(ctx context.Context, collection, id string, out any) error

	// Delete removes collection/id. Deleting an absent document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Close releases any underlying resources.
	Close() error
}
