package lookup

import (
	"context"
	"log/slog"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services/openlibrary"
)

// BookStrategy resolves ISBNs into book records via Open Library. The
// edition record carries author references, not names, so each author key
// is resolved with a follow-up fetch.
type BookStrategy struct {
	editions openlibrary.Fetcher
	logger   *slog.Logger
}

var _ Strategy = (*BookStrategy)(nil)

// NewBookStrategy builds a book strategy over the given client.
func NewBookStrategy(editions openlibrary.Fetcher, logger *slog.Logger) *BookStrategy {
	return &BookStrategy{
		editions: editions,
		logger:   logging.NewComponentLogger(logger, "lookup-book"),
	}
}

func (s *BookStrategy) Kind() catalog.Kind { return catalog.KindBook }

func (s *BookStrategy) SupportsIdentifier(identifierKind string) bool {
	return identifierOneOf(identifierKind, IdentifierISBN)
}

func (s *BookStrategy) Lookup(ctx context.Context, identifierKind, value string) (*Response, error) {
	edition, err := s.editions.GetEditionByISBN(ctx, value)
	if err != nil {
		return nil, err
	}
	if edition == nil {
		return nil, nil
	}

	var authors []string
	for _, key := range edition.AuthorKeys {
		author, err := s.editions.GetAuthor(ctx, key)
		if err != nil {
			return nil, err
		}
		if author != nil {
			authors = append(authors, author.Name)
		}
	}

	book := &catalog.Book{
		Title:       edition.Title,
		Authors:     authors,
		PublishDate: edition.PublishDate,
		Genres:      edition.Subjects,
		Format:      inferBookFormat(edition.PhysicalFormat),
		ISBN:        value,
	}
	if len(edition.Publishers) > 0 {
		book.Publisher = edition.Publishers[0]
	}
	if edition.Pages > 0 {
		book.Pages = catalog.IntPtr(edition.Pages)
	}
	return &Response{Kind: catalog.KindBook, Book: book}, nil
}
