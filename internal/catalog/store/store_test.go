package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"mediashelf/internal/catalog"
	"mediashelf/internal/catalog/store"
	"mediashelf/internal/services"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenPath(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAssignsIDAndRoundTrips(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	book := &catalog.Book{
		Title:   "The Left Hand of Darkness",
		Authors: []string{"Ursula K. Le Guin"},
		Format:  "Paperback",
		Pages:   catalog.IntPtr(304),
	}
	id, err := s.Add(ctx, book)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == "" || book.ID != id {
		t.Fatalf("expected assigned id, got %q / %q", id, book.ID)
	}

	loaded, err := s.Get(ctx, catalog.KindBook, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got, ok := loaded.(*catalog.Book)
	if !ok {
		t.Fatalf("unexpected entity type %T", loaded)
	}
	if got.Title != book.Title || len(got.Authors) != 1 || got.Pages == nil || *got.Pages != 304 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAddRejectsPresetID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Add(context.Background(), &catalog.Book{ID: "explicit", Title: "x"})
	if !errors.Is(err, services.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), catalog.KindMovie, "nope")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	movie := &catalog.Movie{Title: "Example Movie", Format: "DVD"}
	if _, err := s.Add(ctx, movie); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	movie.Format = "Blu-ray"
	if err := s.Update(ctx, movie); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	loaded, err := s.Get(ctx, catalog.KindMovie, movie.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.(*catalog.Movie).Format != "Blu-ray" {
		t.Fatalf("update not persisted: %+v", loaded)
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	err := s.Update(context.Background(), &catalog.Movie{ID: "ghost", Title: "x"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveDeletesEntity(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	music := &catalog.Music{Title: "Kind of Blue", Artist: "Miles Davis"}
	id, err := s.Add(ctx, music)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Remove(ctx, catalog.KindMusic, id); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(ctx, catalog.KindMusic, id); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}

func TestListFiltersByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, &catalog.Book{Title: "A"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(ctx, &catalog.Book{Title: "B"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(ctx, &catalog.Game{Title: "C"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	books, err := s.List(ctx, catalog.KindBook)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}

	count, err := s.Count(ctx, catalog.KindGame)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 game, got %d", count)
	}
}

func TestListEmptyKindReturnsNoEntities(t *testing.T) {
	s := openTestStore(t)
	entities, err := s.List(context.Background(), catalog.KindMusic)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entities) != 0 {
		t.Fatalf("expected empty list, got %d", len(entities))
	}
}
