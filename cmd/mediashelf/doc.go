// Command mediashelf manages a personal media catalog: it resolves barcodes
// and ISBNs into catalog metadata, stores accepted items in a local catalog,
// and reports aggregate views over the collection.
package main
