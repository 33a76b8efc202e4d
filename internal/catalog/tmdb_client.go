// Package catalog serves the landing-page movie lists from TMDB.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"
	tmdbMovieURL     = "https://www.themoviedb.org/movie"

	// w342 matches what the landing cards render at.
	tmdbPosterSize = "w342"

	defaultTimeout = 10 * time.Second
	listLimit      = 5
)

// Movie is one carousel entry.
type Movie struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	PosterURL string `json:"posterUrl,omitempty"`
	Link      string `json:"link"`
}

// Lists bundles the three landing-page carousels.
type Lists struct {
	Trending []Movie `json:"trending"`
	TopRated []Movie `json:"topRated"`
	Upcoming []Movie `json:"upcoming"`
}

// TMDBClient fetches curated movie lists from the TMDB API.
type TMDBClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewTMDBClient creates a TMDBClient with the given API key.
func NewTMDBClient(apiKey string, httpc *http.Client) *TMDBClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &TMDBClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: tmdbBaseURL,
		httpc:   httpc,
	}
}

// IsConfigured reports whether the client has an API key to work with.
func (c *TMDBClient) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// Trending returns this week's trending movies.
func (c *TMDBClient) Trending(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/trending/movie/week")
}

// TopRated returns the top-rated list.
func (c *TMDBClient) TopRated(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/movie/top_rated")
}

// Upcoming returns upcoming releases.
func (c *TMDBClient) Upcoming(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/movie/upcoming")
}

type tmdbListResponse struct {
	Results []struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		PosterPath  string `json:"poster_path"`
		ReleaseDate string `json:"release_date"`
	} `json:"results"`
}

func (c *TMDBClient) list(ctx context.Context, endpoint string) ([]Movie, error) {
	if !c.IsConfigured() {
		return nil, errors.New("tmdb api key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	q.Set("language", "en-US")
	q.Set("page", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("tmdb %s failed: %s", endpoint, resp.Status)
	}

	var payload tmdbListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode tmdb response: %w", err)
	}

	results := payload.Results
	if len(results) > listLimit {
		results = results[:listLimit]
	}

	movies := make([]Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, Movie{
			ID:        r.ID,
			Title:     r.Title,
			Year:      releaseYear(r.ReleaseDate),
			PosterURL: posterURL(r.PosterPath),
			Link:      fmt.Sprintf("%s/%d", tmdbMovieURL, r.ID),
		})
	}
	return movies, nil
}

func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}

func posterURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", tmdbImageBaseURL, tmdbPosterSize, strings.TrimPrefix(trimmed, "/"))
}
