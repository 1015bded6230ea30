package storage

import "context"

// BlobStore is the persistence interface the core depends on.
//
// Implementations must treat each Get and Set as a single atomic operation;
// no partial-state visibility is assumed beyond that.
type BlobStore interface {
	// Get returns the blob stored under key, or (nil, nil) when the key
	// has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key wholesale.
	Set(ctx context.Context, key string, blob []byte) error
}
