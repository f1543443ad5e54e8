package lookup

import (
	"context"
	"log/slog"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services/barcode"
	"mediashelf/internal/services/tmdb"
	"mediashelf/internal/textutil"
)

// MovieStrategy resolves UPC/EAN barcodes into movie records: a product
// lookup yields a retail title, which is cleaned up and searched against
// TMDB for canonical metadata. The disc format comes from the raw retail
// title, before qualifiers are stripped.
type MovieStrategy struct {
	products barcode.Lookuper
	metadata tmdb.Searcher
	logger   *slog.Logger
}

var _ Strategy = (*MovieStrategy)(nil)

// NewMovieStrategy builds a movie strategy over the given clients.
func NewMovieStrategy(products barcode.Lookuper, metadata tmdb.Searcher, logger *slog.Logger) *MovieStrategy {
	return &MovieStrategy{
		products: products,
		metadata: metadata,
		logger:   logging.NewComponentLogger(logger, "lookup-movie"),
	}
}

func (s *MovieStrategy) Kind() catalog.Kind { return catalog.KindMovie }

func (s *MovieStrategy) SupportsIdentifier(identifierKind string) bool {
	return identifierOneOf(identifierKind, IdentifierUPC, IdentifierEAN)
}

func (s *MovieStrategy) Lookup(ctx context.Context, identifierKind, value string) (*Response, error) {
	product, err := s.products.Lookup(ctx, value)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	year, _ := textutil.ExtractYear(product.Title)
	searchTitle := textutil.StripQualifiers(product.Title)

	details, err := s.metadata.SearchAndGetDetails(ctx, searchTitle, year)
	if err != nil {
		return nil, err
	}
	if details == nil {
		s.logger.Debug("no metadata match for product title",
			logging.String("search_title", searchTitle))
		return nil, nil
	}

	movie := &catalog.Movie{
		Title:       details.Title,
		Studios:     details.Studios,
		Genres:      details.Genres,
		Format:      inferDiscFormat(product.Title),
		ReleaseDate: details.ReleaseDate,
		Rating:      details.Certification,
		Overview:    details.Overview,
		IsTVSeries:  details.IsTVSeries,
		Barcode:     value,
	}
	if details.Runtime > 0 {
		movie.Runtime = catalog.IntPtr(details.Runtime)
	}
	return &Response{Kind: catalog.KindMovie, Movie: movie}, nil
}
