// Package database opens and migrates the SQLite file backing the
// scenario blob store.
//
// The schema is deliberately small: a single blobs table holding whole
// JSON documents keyed by name, plus the schema_migrations bookkeeping
// table. Connections run with WAL mode and a busy timeout, pinned to one
// connection because SQLite allows a single writer and the blob store is
// read-modify-write over one row.
//
// Migrations are *.sql files named YYYYMMDD_HHMMSS_description.up.sql
// (with an optional .down.sql twin) embedded by the migrations package.
// Each step runs in its own transaction and is recorded by version, so a
// rerun after a failure continues from the failing step.
package database
