// Package store persists catalog entities in SQLite as JSON documents.
//
// Each entity occupies one row keyed by a store-assigned UUID, with the kind
// and title duplicated into columns for listing. The database is the system
// of record for the catalog; aggregate caches are derived from it and may be
// cleared at any time. Schema changes bump the version in schema.go.
package store
