package lookup

import (
	"context"
	"log/slog"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services/barcode"
	"mediashelf/internal/textutil"
)

// GameStrategy resolves UPC/EAN barcodes into video-game records from the
// product listing alone. Platform and medium are inferred from title and
// category tokens; there is no secondary metadata source.
type GameStrategy struct {
	products barcode.Lookuper
	logger   *slog.Logger
}

var _ Strategy = (*GameStrategy)(nil)

// NewGameStrategy builds a game strategy over the given client.
func NewGameStrategy(products barcode.Lookuper, logger *slog.Logger) *GameStrategy {
	return &GameStrategy{
		products: products,
		logger:   logging.NewComponentLogger(logger, "lookup-game"),
	}
}

func (s *GameStrategy) Kind() catalog.Kind { return catalog.KindGame }

func (s *GameStrategy) SupportsIdentifier(identifierKind string) bool {
	return identifierOneOf(identifierKind, IdentifierUPC, IdentifierEAN)
}

func (s *GameStrategy) Lookup(ctx context.Context, identifierKind, value string) (*Response, error) {
	product, err := s.products.Lookup(ctx, value)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	platform := inferGamePlatform(product.Title, product.Category)
	game := &catalog.Game{
		Title:    textutil.StripQualifiers(product.Title),
		Format:   gameFormat(platform),
		Platform: platform,
		Barcode:  value,
	}
	if product.Brand != "" {
		game.Studios = []string{product.Brand}
	}
	return &Response{Kind: catalog.KindGame, Game: game}, nil
}
