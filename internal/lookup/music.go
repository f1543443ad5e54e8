package lookup

import (
	"context"
	"log/slog"
	"strings"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services/barcode"
	"mediashelf/internal/textutil"
)

// MusicStrategy resolves UPC/EAN barcodes into album records. Retail music
// listings usually read "Artist - Album", so the title is split on the
// first separator when one is present.
type MusicStrategy struct {
	products barcode.Lookuper
	logger   *slog.Logger
}

var _ Strategy = (*MusicStrategy)(nil)

// NewMusicStrategy builds a music strategy over the given client.
func NewMusicStrategy(products barcode.Lookuper, logger *slog.Logger) *MusicStrategy {
	return &MusicStrategy{
		products: products,
		logger:   logging.NewComponentLogger(logger, "lookup-music"),
	}
}

func (s *MusicStrategy) Kind() catalog.Kind { return catalog.KindMusic }

func (s *MusicStrategy) SupportsIdentifier(identifierKind string) bool {
	return identifierOneOf(identifierKind, IdentifierUPC, IdentifierEAN)
}

func (s *MusicStrategy) Lookup(ctx context.Context, identifierKind, value string) (*Response, error) {
	product, err := s.products.Lookup(ctx, value)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	artist, album := splitArtistAlbum(textutil.StripQualifiers(product.Title))
	music := &catalog.Music{
		Title:   album,
		Artist:  artist,
		Format:  inferAudioFormat(product.Title, product.Category),
		Barcode: value,
	}
	return &Response{Kind: catalog.KindMusic, Music: music}, nil
}

// splitArtistAlbum splits "Artist - Album" on the first spaced hyphen. A
// title without a separator is all album, no artist.
func splitArtistAlbum(title string) (artist, album string) {
	if artist, album, ok := strings.Cut(title, " - "); ok {
		artist = strings.TrimSpace(artist)
		album = strings.TrimSpace(album)
		if artist != "" && album != "" {
			return artist, album
		}
	}
	return "", title
}
