// Package textutil provides text processing utilities for product-title
// cleanup and distinct-value collection.
//
// The primary use cases are:
//   - Stripping release-year tokens and parenthetical qualifiers from
//     retailer product titles before metadata searches
//   - Collecting trimmed, deduplicated, sorted value sets for catalog
//     aggregation
//
// Titles are NFC-normalized before tokenization so values sourced from
// different providers compare consistently.
package textutil
