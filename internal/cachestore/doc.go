// Package cachestore provides a JSON-file-backed key/value cache with
// per-entry TTLs.
//
// Aggregate results are cheap to recompute but hit the catalog store for
// every kind, so they are cached under well-known keys ("stats",
// "metadata:{kind}:{field}"). Entries expire individually; expired entries
// read as misses and are pruned on the next save. Concurrent misses on the
// same key recompute independently and last write wins.
package cachestore
