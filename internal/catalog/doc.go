// Package catalog defines the canonical entity shapes shared across
// mediashelf: books, movies, games, and music albums.
//
// Every entity carries an opaque store-assigned ID, a title, and a set of
// optional kind-specific fields. Lookup strategies produce partially
// populated entities from external metadata; aggregators read persisted ones.
// Keep new fields optional so records sourced before a schema addition stay
// loadable.
package catalog
