// Package lookup resolves external identifiers (UPC, EAN, ISBN) into
// canonical catalog entities.
//
// A Dispatcher holds an immutable, ordered list of strategies, one per media
// kind. Each strategy declares which identifier kinds it accepts and runs a
// two-phase pipeline: a primary product or edition lookup, then a metadata
// enrichment call, then a deterministic field mapping. Absence at any phase
// downgrades the whole lookup to "not found" (nil response, nil error);
// client transport failures propagate to the caller untouched.
//
// Responses are per-request values. They are never cached here and never
// written back to the catalog store; persisting an accepted result is the
// caller's decision.
package lookup
