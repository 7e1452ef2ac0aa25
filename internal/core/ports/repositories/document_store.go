package repositories

import "context"

// Snapshot is one stored document: its id and its persisted (snake_case) fields.
type Snapshot struct {
	ID   string
	Data map[string]any
}

// Filter is an equality predicate on a top-level persisted field.
type Filter struct {
	Field string
	Value any
}

// DocumentStore is a schemaless store of documents grouped in collections.
// Collection paths are slash separated, e.g. "users/savkar_user_001/loans".
type DocumentStore interface {
	// Get returns apperrors.ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (*Snapshot, error)

	// Create stores data under a new store-generated id and returns that id.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)

	// Set creates or replaces the document with the given id.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Update merges data into an existing document. It returns
	// apperrors.ErrNotFound when the document does not exist.
	Update(ctx context.Context, collection, id string, data map[string]any) error

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// List returns every document in the collection matching all filters,
	// in the store's natural order.
	List(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}
