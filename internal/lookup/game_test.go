package lookup

import (
	"context"
	"errors"
	"testing"

	"mediashelf/internal/logging"
	"mediashelf/internal/services/barcode"
)

func TestGameLookup(t *testing.T) {
	products := &fakeProducts{product: &barcode.Product{
		Barcode:  "045496596439",
		Title:    "Example Quest (Nintendo Switch) (2023)",
		Brand:    "Example Games",
		Category: "Video Games",
	}}
	strategy := NewGameStrategy(products, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierUPC, "045496596439")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if response == nil || response.Game == nil {
		t.Fatalf("expected game response, got %+v", response)
	}

	game := response.Game
	if game.Title != "Example Quest" {
		t.Fatalf("title = %q, want qualifiers stripped", game.Title)
	}
	if game.Platform != "Nintendo Switch" || game.Format != "Cartridge" {
		t.Fatalf("unexpected platform/format %q %q", game.Platform, game.Format)
	}
	if len(game.Studios) != 1 || game.Studios[0] != "Example Games" {
		t.Fatalf("studios = %v", game.Studios)
	}
	if game.Barcode != "045496596439" {
		t.Fatalf("barcode = %q", game.Barcode)
	}
}

func TestGameLookupUnknownPlatform(t *testing.T) {
	products := &fakeProducts{product: &barcode.Product{Barcode: "1", Title: "Mystery Game"}}
	strategy := NewGameStrategy(products, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierEAN, "1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if response.Game.Platform != "" || response.Game.Format != "" {
		t.Fatalf("expected empty platform/format, got %+v", response.Game)
	}
}

func TestGameLookupProductMiss(t *testing.T) {
	strategy := NewGameStrategy(&fakeProducts{}, logging.NewNop())

	response, err := strategy.Lookup(context.Background(), IdentifierUPC, "000000000000")
	if err != nil || response != nil {
		t.Fatalf("expected not found, got %+v %v", response, err)
	}
}

func TestGameLookupErrorPropagates(t *testing.T) {
	transportErr := errors.New("timeout")
	strategy := NewGameStrategy(&fakeProducts{err: transportErr}, logging.NewNop())

	if _, err := strategy.Lookup(context.Background(), IdentifierUPC, "1"); !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
