// Package storage provides the key-value blob store Sentry persists into.
//
// The core only needs get/set semantics over opaque blobs addressed by a
// string key; everything above this interface is storage-technology
// agnostic. Two implementations ship:
//
//   - SQLite: the production store, one row per key in the blobs table.
//   - Memory: an in-process store for tests and throwaway runs.
//
// Reads of an absent key return (nil, nil) rather than an error: "nothing
// stored yet" is a normal state, not a failure. Writes replace the blob
// wholesale; there are no partial updates at this layer.
package storage
