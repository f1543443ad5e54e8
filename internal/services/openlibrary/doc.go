// Package openlibrary fetches book editions and author records from the
// Open Library API for ISBN lookups.
//
// A 404 from the API is a "no result" outcome (nil value, nil error); other
// non-200 statuses and transport failures are errors.
package openlibrary
