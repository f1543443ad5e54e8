package barcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Product describes a retail product resolved from a barcode.
type Product struct {
	Barcode  string
	Title    string
	Brand    string
	Category string
	Images   []string
}

// Lookuper defines the product lookup operation used by strategies.
type Lookuper interface {
	Lookup(ctx context.Context, code string) (*Product, error)
}

type lookupPayload struct {
	Code  string `json:"code"`
	Total int    `json:"total"`
	Items []struct {
		Title    string   `json:"title"`
		Brand    string   `json:"brand"`
		Category string   `json:"category"`
		UPC      string   `json:"upc"`
		EAN      string   `json:"ean"`
		Images   []string `json:"images"`
	} `json:"items"`
}

// Client provides access to a UPC/EAN product lookup API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

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

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a product lookup client. The API key is optional; the trial
// endpoint accepts unauthenticated requests.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("barcode base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup resolves a barcode to a product. Returns nil when the API knows
// nothing about the code.
func (c *Client) Lookup(ctx context.Context, code string) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("barcode must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/lookup")
	if err != nil {
		return nil, fmt.Errorf("parse lookup url: %w", err)
	}
	params := url.Values{}
	params.Set("upc", code)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("user_key", c.apiKey)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("barcode lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload lookupPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	if payload.Total == 0 || len(payload.Items) == 0 {
		return nil, nil
	}

	item := payload.Items[0]
	product := &Product{
		Barcode:  code,
		Title:    strings.TrimSpace(item.Title),
		Brand:    strings.TrimSpace(item.Brand),
		Category: strings.TrimSpace(item.Category),
		Images:   item.Images,
	}
	if product.Title == "" {
		return nil, nil
	}
	return product, nil
}
