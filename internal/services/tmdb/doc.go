// Package tmdb provides access to The Movie Database API for title searches
// and detail fetches used during barcode lookups.
//
// A "no result" outcome is a nil value with a nil error; transport and
// non-200 responses are errors. SearchAndGetDetails composes a multi search
// with the appropriate movie or TV detail fetch so callers get a single
// normalized Details record.
package tmdb
