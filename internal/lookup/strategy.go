package lookup

import (
	"context"

	"mediashelf/internal/catalog"
)

// Identifier kinds understood by the built-in strategies.
const (
	IdentifierUPC  = "upc"
	IdentifierEAN  = "ean"
	IdentifierISBN = "isbn"
)

// Strategy resolves identifiers of a single media kind into canonical
// responses.
type Strategy interface {
	// Kind reports the media kind this strategy serves.
	Kind() catalog.Kind
	// SupportsIdentifier reports whether the strategy accepts the given
	// identifier kind. Matching is case-insensitive.
	SupportsIdentifier(identifierKind string) bool
	// Lookup resolves the identifier. A nil response with a nil error means
	// the identifier is unknown to the external sources.
	Lookup(ctx context.Context, identifierKind, value string) (*Response, error)
}

// Response is the tagged union returned by lookups: exactly one variant is
// set, matching Kind. Each variant is a partially populated canonical entity
// that has not been persisted (no ID).
type Response struct {
	Kind  catalog.Kind   `json:"kind"`
	Book  *catalog.Book  `json:"book,omitempty"`
	Movie *catalog.Movie `json:"movie,omitempty"`
	Game  *catalog.Game  `json:"game,omitempty"`
	Music *catalog.Music `json:"music,omitempty"`
}

// Entity returns the populated variant as a catalog entity.
func (r *Response) Entity() catalog.Entity {
	switch {
	case r == nil:
		return nil
	case r.Book != nil:
		return r.Book
	case r.Movie != nil:
		return r.Movie
	case r.Game != nil:
		return r.Game
	case r.Music != nil:
		return r.Music
	default:
		return nil
	}
}
