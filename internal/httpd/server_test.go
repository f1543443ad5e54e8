package httpd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"mediashelf/internal/aggregate"
	"mediashelf/internal/cachestore"
	"mediashelf/internal/catalog"
	"mediashelf/internal/catalog/store"
	"mediashelf/internal/config"
	"mediashelf/internal/logging"
	"mediashelf/internal/lookup"
	"mediashelf/internal/services"
)

type stubStrategy struct {
	response  *lookup.Response
	err       error
	requestID string
	mediaKind string
}

func (s *stubStrategy) Kind() catalog.Kind { return catalog.KindMovie }

func (s *stubStrategy) SupportsIdentifier(identifierKind string) bool {
	return identifierKind == lookup.IdentifierUPC
}

func (s *stubStrategy) Lookup(ctx context.Context, identifierKind, value string) (*lookup.Response, error) {
	s.requestID, _ = services.RequestIDFromContext(ctx)
	s.mediaKind, _ = services.MediaKindFromContext(ctx)
	return s.response, s.err
}

func newTestServer(t *testing.T, strategy lookup.Strategy) (*httptest.Server, *store.Store) {
	t.Helper()

	catalogStore, err := store.OpenPath(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = catalogStore.Close() })

	cache := cachestore.New(filepath.Join(t.TempDir(), "cache.json"), logging.NewNop())
	aggregator := aggregate.New(catalogStore, cache, time.Hour, time.Hour, logging.NewNop())

	var strategies []lookup.Strategy
	if strategy != nil {
		strategies = append(strategies, strategy)
	}
	dispatcher := lookup.NewDispatcher(logging.NewNop(), strategies...)

	cfg := &config.Config{}
	cfg.Paths.APIBind = "127.0.0.1:0"

	srv := New(cfg, catalogStore, dispatcher, aggregator, logging.NewNop())
	if srv == nil {
		t.Fatal("expected server for configured bind address")
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, catalogStore
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var payload map[string]string
	getJSON(t, ts.URL+"/api/health", http.StatusOK, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload %v", payload)
	}
}

func TestLookupEndpoint(t *testing.T) {
	strategy := &stubStrategy{response: &lookup.Response{
		Kind:  catalog.KindMovie,
		Movie: &catalog.Movie{Title: "Example Movie", Format: "Blu-ray"},
	}}
	ts, _ := newTestServer(t, strategy)

	var payload struct {
		Kind   catalog.Kind    `json:"kind"`
		Result json.RawMessage `json:"result"`
	}
	getJSON(t, ts.URL+"/api/lookup?kind=movie&id_kind=upc&value=012345678905", http.StatusOK, &payload)
	if payload.Kind != catalog.KindMovie {
		t.Fatalf("kind = %q", payload.Kind)
	}
	var movie catalog.Movie
	if err := json.Unmarshal(payload.Result, &movie); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if movie.Title != "Example Movie" || movie.Format != "Blu-ray" {
		t.Fatalf("unexpected movie %+v", movie)
	}
}

func TestLookupMissIs404(t *testing.T) {
	ts, _ := newTestServer(t, &stubStrategy{})

	getJSON(t, ts.URL+"/api/lookup?kind=movie&id_kind=upc&value=000000000000", http.StatusNotFound, nil)
}

func TestLookupUnknownKindIs400(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	getJSON(t, ts.URL+"/api/lookup?kind=podcast&id_kind=upc&value=1", http.StatusBadRequest, nil)
}

func TestLookupMissingParamsIs400(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	getJSON(t, ts.URL+"/api/lookup?kind=movie", http.StatusBadRequest, nil)
}

func TestLookupUpstreamFailureIs502(t *testing.T) {
	ts, _ := newTestServer(t, &stubStrategy{err: errors.New("upstream unavailable")})

	getJSON(t, ts.URL+"/api/lookup?kind=movie&id_kind=upc&value=1", http.StatusBadGateway, nil)
}

func TestRequestsCarryRequestID(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected a generated request id header")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("request id = %q, want req-42", got)
	}
}

func TestLookupContextCarriesRequestMetadata(t *testing.T) {
	strategy := &stubStrategy{response: &lookup.Response{
		Kind:  catalog.KindMovie,
		Movie: &catalog.Movie{Title: "Example Movie"},
	}}
	ts, _ := newTestServer(t, strategy)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/lookup?kind=movie&id_kind=upc&value=1", nil)
	req.Header.Set("X-Request-ID", "req-7")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET lookup: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if strategy.requestID != "req-7" {
		t.Fatalf("strategy saw request id %q, want req-7", strategy.requestID)
	}
	if strategy.mediaKind != "movie" {
		t.Fatalf("strategy saw media kind %q, want movie", strategy.mediaKind)
	}
}

func TestItemsRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	body, _ := json.Marshal(catalog.Movie{Title: "Example Movie", Format: "DVD"})
	resp, err := http.Post(ts.URL+"/api/items?kind=movie", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST items: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", resp.StatusCode)
	}
	var created catalog.Movie
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created item: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created item has no id")
	}

	var listed struct {
		Items []catalog.Movie `json:"items"`
		Total int             `json:"total"`
	}
	getJSON(t, ts.URL+"/api/items?kind=movie", http.StatusOK, &listed)
	if listed.Total != 1 || listed.Items[0].Title != "Example Movie" {
		t.Fatalf("unexpected listing %+v", listed)
	}

	var fetched catalog.Movie
	getJSON(t, ts.URL+"/api/items/movie/"+created.ID, http.StatusOK, &fetched)
	if fetched.ID != created.ID {
		t.Fatalf("fetched id = %q, want %q", fetched.ID, created.ID)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/items/movie/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE item: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("DELETE status = %d", delResp.StatusCode)
	}

	getJSON(t, ts.URL+"/api/items/movie/"+created.ID, http.StatusNotFound, nil)
}

func TestCreateItemWithoutTitleIs400(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/api/items?kind=book", "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("POST items: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMetadataEndpoint(t *testing.T) {
	ts, catalogStore := newTestServer(t, nil)

	for _, format := range []string{"Blu-ray", "DVD", "Blu-ray"} {
		if _, err := catalogStore.Add(context.Background(), &catalog.Movie{Title: "M " + format, Format: format}); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	var payload metadataResponse
	getJSON(t, ts.URL+"/api/metadata/movie/format", http.StatusOK, &payload)
	if payload.Total != 2 || len(payload.Values) != 2 {
		t.Fatalf("unexpected metadata payload %+v", payload)
	}
	if payload.Values[0] != "Blu-ray" || payload.Values[1] != "DVD" {
		t.Fatalf("values = %v", payload.Values)
	}
}

func TestMetadataUnknownFieldIs400(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	getJSON(t, ts.URL+"/api/metadata/movie/boom", http.StatusBadRequest, nil)
}

func TestMetadataMalformedPathIs404(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	getJSON(t, ts.URL+"/api/metadata/movie", http.StatusNotFound, nil)
}

func TestStatsEndpoint(t *testing.T) {
	ts, catalogStore := newTestServer(t, nil)

	if _, err := catalogStore.Add(context.Background(), &catalog.Book{Title: "B", Pages: catalog.IntPtr(100)}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	var stats aggregate.LibraryStats
	getJSON(t, ts.URL+"/api/stats", http.StatusOK, &stats)
	if stats.Books.Total != 1 || stats.Books.TotalPages != 100 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestNewWithoutBindReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	if srv := New(cfg, nil, nil, nil, logging.NewNop()); srv != nil {
		t.Fatal("expected nil server without bind address")
	}
}
