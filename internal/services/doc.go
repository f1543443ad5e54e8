// Package services defines the error taxonomy and request-context helpers
// shared by mediashelf's external-service clients and core components.
//
// Subpackages hold the concrete HTTP clients (tmdb, barcode, openlibrary).
// Clients signal "no result" with a nil value and nil error; sentinel errors
// here classify genuine failures so callers can map them to exit codes or
// HTTP statuses without string matching.
package services
