// Package httpd exposes the catalog, lookup, and aggregation operations
// over a small JSON HTTP API intended for localhost use.
package httpd
