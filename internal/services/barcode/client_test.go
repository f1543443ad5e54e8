package barcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupReturnsFirstItem(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotKey = r.Header.Get("user_key")
		if r.URL.Query().Get("upc") != "012345678905" {
			t.Errorf("unexpected upc parameter %q", r.URL.Query().Get("upc"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":  "OK",
			"total": 2,
			"items": []map[string]any{
				{"title": "Example Movie (Blu-ray + Digital) (2018)", "brand": "Studio", "category": "Media > Movies", "images": []string{"https://img.example/1.jpg"}},
				{"title": "Other listing"},
			},
		})
	}))
	defer server.Close()

	client, err := New(server.URL, "trial-key")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	product, err := client.Lookup(context.Background(), "012345678905")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if product == nil {
		t.Fatal("expected product, got nil")
	}
	if product.Title != "Example Movie (Blu-ray + Digital) (2018)" {
		t.Fatalf("unexpected title %q", product.Title)
	}
	if product.Brand != "Studio" || product.Category != "Media > Movies" {
		t.Fatalf("unexpected product %+v", product)
	}
	if product.Barcode != "012345678905" {
		t.Fatalf("unexpected barcode %q", product.Barcode)
	}
	if gotKey != "trial-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
}

func TestLookupEmptyResultIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"code": "OK", "total": 0, "items": []map[string]any{}})
	}))
	defer server.Close()

	client, err := New(server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	product, err := client.Lookup(context.Background(), "000000000000")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil product, got %+v", product)
	}
}

func TestLookupNotFoundStatusIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	product, err := client.Lookup(context.Background(), "000000000000")
	if err != nil || product != nil {
		t.Fatalf("expected miss, got %+v %v", product, err)
	}
}

func TestLookupServerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "000000000000"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
