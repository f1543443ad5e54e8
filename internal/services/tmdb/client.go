package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB search match.
type Result struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	MediaType    string `json:"media_type"`
}

// Response models the TMDB paginated search response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Details is the normalized metadata record assembled from detail fetches.
type Details struct {
	ID            int64
	Title         string
	Overview      string
	ReleaseDate   string
	Runtime       int
	Genres        []string
	Studios       []string
	Certification string
	IsTVSeries    bool
}

// Searcher defines the TMDB operations used by lookup strategies.
type Searcher interface {
	SearchAndGetDetails(ctx context.Context, title string, year int) (*Details, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

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

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMulti performs a TMDB multi search across movies and TV shows.
func (c *Client) SearchMulti(ctx context.Context, query string, year int) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var payload Response
	if err := c.get(ctx, "/search/multi", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchAndGetDetails searches for the title and fetches full details of the
// best match. Returns nil when the search yields no usable result.
func (c *Client) SearchAndGetDetails(ctx context.Context, title string, year int) (*Details, error) {
	response, err := c.SearchMulti(ctx, title, year)
	if err != nil {
		return nil, err
	}

	best := firstUsableResult(response)
	if best == nil {
		return nil, nil
	}

	if strings.EqualFold(best.MediaType, "tv") {
		return c.GetTVDetails(ctx, best.ID)
	}
	return c.GetMovieDetails(ctx, best.ID)
}

// firstUsableResult picks the first movie or TV entry, skipping person hits
// that multi search interleaves into results.
func firstUsableResult(response *Response) *Result {
	if response == nil {
		return nil
	}
	for i := range response.Results {
		result := &response.Results[i]
		switch strings.ToLower(result.MediaType) {
		case "movie", "tv", "":
			return result
		}
	}
	return nil
}

type movieDetailsPayload struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Overview            string `json:"overview"`
	ReleaseDate         string `json:"release_date"`
	Runtime             int    `json:"runtime"`
	Genres              []namedValue `json:"genres"`
	ProductionCompanies []namedValue `json:"production_companies"`
	ReleaseDates        struct {
		Results []struct {
			Country  string `json:"iso_3166_1"`
			Releases []struct {
				Certification string `json:"certification"`
			} `json:"release_dates"`
		} `json:"results"`
	} `json:"release_dates"`
}

type tvDetailsPayload struct {
	ID                  int64        `json:"id"`
	Name                string       `json:"name"`
	Overview            string       `json:"overview"`
	FirstAirDate        string       `json:"first_air_date"`
	EpisodeRunTime      []int        `json:"episode_run_time"`
	Genres              []namedValue `json:"genres"`
	ProductionCompanies []namedValue `json:"production_companies"`
	ContentRatings      struct {
		Results []struct {
			Country string `json:"iso_3166_1"`
			Rating  string `json:"rating"`
		} `json:"results"`
	} `json:"content_ratings"`
}

type namedValue struct {
	Name string `json:"name"`
}

// GetMovieDetails fetches movie details by TMDB ID, including the US
// certification from the release_dates sub-resource.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Details, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "release_dates")

	var payload movieDetailsPayload
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &payload); err != nil {
		return nil, err
	}

	details := &Details{
		ID:          payload.ID,
		Title:       strings.TrimSpace(payload.Title),
		Overview:    strings.TrimSpace(payload.Overview),
		ReleaseDate: strings.TrimSpace(payload.ReleaseDate),
		Runtime:     payload.Runtime,
		Genres:      names(payload.Genres),
		Studios:     names(payload.ProductionCompanies),
	}
	for _, entry := range payload.ReleaseDates.Results {
		if entry.Country != "US" {
			continue
		}
		for _, release := range entry.Releases {
			if cert := strings.TrimSpace(release.Certification); cert != "" {
				details.Certification = cert
				break
			}
		}
		break
	}
	return details, nil
}

// GetTVDetails fetches TV show details by TMDB ID, including the US content
// rating.
func (c *Client) GetTVDetails(ctx context.Context, showID int64) (*Details, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "content_ratings")

	var payload tvDetailsPayload
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", showID), params, &payload); err != nil {
		return nil, err
	}

	details := &Details{
		ID:          payload.ID,
		Title:       strings.TrimSpace(payload.Name),
		Overview:    strings.TrimSpace(payload.Overview),
		ReleaseDate: strings.TrimSpace(payload.FirstAirDate),
		Genres:      names(payload.Genres),
		Studios:     names(payload.ProductionCompanies),
		IsTVSeries:  true,
	}
	if len(payload.EpisodeRunTime) > 0 {
		details.Runtime = payload.EpisodeRunTime[0]
	}
	for _, entry := range payload.ContentRatings.Results {
		if entry.Country == "US" {
			details.Certification = strings.TrimSpace(entry.Rating)
			break
		}
	}
	return details, nil
}

func names(values []namedValue) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if name := strings.TrimSpace(value.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
