package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Edition describes a single book edition keyed by ISBN.
type Edition struct {
	Title          string
	PhysicalFormat string
	PublishDate    string
	Publishers     []string
	Pages          int
	Subjects       []string
	AuthorKeys     []string
}

// Author is a resolved author record.
type Author struct {
	Key  string
	Name string
}

// Fetcher defines the Open Library operations used by the book strategy.
type Fetcher interface {
	GetEditionByISBN(ctx context.Context, isbn string) (*Edition, error)
	GetAuthor(ctx context.Context, key string) (*Author, error)
}

type editionPayload struct {
	Title          string   `json:"title"`
	PhysicalFormat string   `json:"physical_format"`
	PublishDate    string   `json:"publish_date"`
	NumberOfPages  int      `json:"number_of_pages"`
	Publishers     []string `json:"publishers"`
	Subjects       []string `json:"subjects"`
	Authors        []struct {
		Key string `json:"key"`
	} `json:"authors"`
}

type authorPayload struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Client provides access to the Open Library API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an Open Library client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("openlibrary base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetEditionByISBN fetches the edition record for an ISBN. Returns nil when
// the ISBN is unknown to Open Library.
func (c *Client) GetEditionByISBN(ctx context.Context, isbn string) (*Edition, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, errors.New("isbn must not be empty")
	}

	var payload editionPayload
	found, err := c.get(ctx, "/isbn/"+isbn+".json", &payload)
	if err != nil || !found {
		return nil, err
	}

	edition := &Edition{
		Title:          strings.TrimSpace(payload.Title),
		PhysicalFormat: strings.TrimSpace(payload.PhysicalFormat),
		PublishDate:    strings.TrimSpace(payload.PublishDate),
		Publishers:     payload.Publishers,
		Pages:          payload.NumberOfPages,
		Subjects:       payload.Subjects,
	}
	for _, author := range payload.Authors {
		if key := strings.TrimSpace(author.Key); key != "" {
			edition.AuthorKeys = append(edition.AuthorKeys, key)
		}
	}
	if edition.Title == "" {
		return nil, nil
	}
	return edition, nil
}

// GetAuthor fetches an author record by its Open Library key (e.g.
// "/authors/OL23919A"). Returns nil when the key is unknown.
func (c *Client) GetAuthor(ctx context.Context, key string) (*Author, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("author key must not be empty")
	}
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}

	var payload authorPayload
	found, err := c.get(ctx, key+".json", &payload)
	if err != nil || !found {
		return nil, err
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, nil
	}
	return &Author{Key: key, Name: name}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return false, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("openlibrary %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode openlibrary response: %w", err)
	}
	return true, nil
}
