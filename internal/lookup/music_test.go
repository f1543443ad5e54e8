package lookup

import (
	"context"
	"testing"

	"mediashelf/internal/logging"
	"mediashelf/internal/services/barcode"
)

func TestMusicLookup(t *testing.T) {
	products := &fakeProducts{product: &barcode.Product{
		Barcode:  "602547288851",
		Title:    "Example Artist - Example Album (Vinyl) (2015)",
		Category: "Music > Records",
	}}
	strategy := NewMusicStrategy(products, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierUPC, "602547288851")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if response == nil || response.Music == nil {
		t.Fatalf("expected music response, got %+v", response)
	}

	music := response.Music
	if music.Artist != "Example Artist" || music.Title != "Example Album" {
		t.Fatalf("unexpected artist/title %q %q", music.Artist, music.Title)
	}
	if music.Format != "Vinyl" {
		t.Fatalf("format = %q, want Vinyl", music.Format)
	}
	if music.Barcode != "602547288851" {
		t.Fatalf("barcode = %q", music.Barcode)
	}
}

func TestMusicLookupNoSeparator(t *testing.T) {
	products := &fakeProducts{product: &barcode.Product{Barcode: "1", Title: "Untitled Album (CD)"}}
	strategy := NewMusicStrategy(products, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierEAN, "1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if response.Music.Artist != "" || response.Music.Title != "Untitled Album" {
		t.Fatalf("unexpected artist/title %q %q", response.Music.Artist, response.Music.Title)
	}
	if response.Music.Format != "CD" {
		t.Fatalf("format = %q, want CD", response.Music.Format)
	}
}

func TestMusicLookupProductMiss(t *testing.T) {
	strategy := NewMusicStrategy(&fakeProducts{}, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierUPC, "000000000000")
	if err != nil || response != nil {
		t.Fatalf("expected not found, got %+v %v", response, err)
	}
}

func TestSplitArtistAlbum(t *testing.T) {
	cases := []struct {
		title  string
		artist string
		album  string
	}{
		{"Daft Punk - Discovery", "Daft Punk", "Discovery"},
		{"Discovery", "", "Discovery"},
		{" - Discovery", "", " - Discovery"},
		{"A - B - C", "A", "B - C"},
	}
	for _, tc := range cases {
		artist, album := splitArtistAlbum(tc.title)
		if artist != tc.artist || album != tc.album {
			t.Errorf("splitArtistAlbum(%q) = %q, %q; want %q, %q", tc.title, artist, album, tc.artist, tc.album)
		}
	}
}
