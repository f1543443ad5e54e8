// Package aggregate computes cached roll-ups over the catalog: distinct
// metadata values per field and library-wide statistics.
//
// Both operations are cache-aside over a shared cachestore: a hit returns
// the cached payload verbatim, a miss fetches entity lists from the store,
// computes, writes the result back with the configured TTL, and returns it.
// Concurrent misses on the same key may recompute independently; the last
// writer wins, which is harmless because recomputation is deterministic
// over the same catalog state.
package aggregate
