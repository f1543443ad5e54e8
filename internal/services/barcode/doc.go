// Package barcode looks up retail products by UPC/EAN code.
//
// The client targets the upcitemdb JSON API shape. A successful response
// with zero items is a "no result" outcome (nil value, nil error); transport
// failures and non-200 statuses are errors.
package barcode
