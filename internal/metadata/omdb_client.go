// Package metadata looks up movie details by title against the OMDB API.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shop2008/movie-recommendation-app/internal/model"
)

const (
	omdbBaseURL  = "https://www.omdbapi.com/"
	imdbTitleURL = "https://www.imdb.com/title/"

	defaultTimeout = 10 * time.Second
)

// ErrNotFound is returned when the provider answers but has no match for
// the title. It is distinct from transport failures, although callers in
// the enrichment path treat both the same way (drop the candidate).
var ErrNotFound = errors.New("movie not found")

// OMDBClient is an HTTP client for the OMDB API. A lookup is a single
// attempt: no retries by design, failures are cheap to drop.
type OMDBClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewOMDBClient creates an OMDBClient with the given API key.
func NewOMDBClient(apiKey string, httpc *http.Client) *OMDBClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &OMDBClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: omdbBaseURL,
		httpc:   httpc,
	}
}

// omdbResponse is the provider payload. OMDB reports "no match" inside a
// 200 response via Response=="False", and uses the literal "N/A" for
// fields it has no data for.
type omdbResponse struct {
	ResponseOK string `json:"Response"`
	ErrorText  string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	IMDBID     string `json:"imdbID"`
	IMDBRating string `json:"imdbRating"`
	Runtime    string `json:"Runtime"`
	Director   string `json:"Director"`
	Plot       string `json:"Plot"`
}

// FetchDetails resolves a title to its MovieDetail. A provider-reported
// miss returns ErrNotFound; timeouts, non-2xx statuses and malformed
// payloads return other errors. Every failure is logged with its cause.
func (c *OMDBClient) FetchDetails(ctx context.Context, title string) (*model.MovieDetail, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	if c.apiKey == "" {
		return nil, errors.New("omdb api key not configured")
	}

	endpoint := fmt.Sprintf("%s?t=%s&apikey=%s", c.baseURL, url.QueryEscape(title), c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[OMDB] lookup %q failed: %v", title, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[OMDB] lookup %q failed: %s", title, resp.Status)
		return nil, fmt.Errorf("omdb request failed: %s", resp.Status)
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[OMDB] lookup %q returned malformed payload: %v", title, err)
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}

	if payload.ResponseOK != "True" {
		log.Printf("[OMDB] lookup %q: %s", title, payload.ErrorText)
		return nil, ErrNotFound
	}

	return &model.MovieDetail{
		Title:        payload.Title,
		PosterURL:    normalizeField(payload.Poster),
		ExternalLink: imdbTitleURL + payload.IMDBID,
		Year:         payload.Year,
		Rating:       normalizeField(payload.IMDBRating),
		Runtime:      normalizeField(payload.Runtime),
		Director:     normalizeField(payload.Director),
		Plot:         payload.Plot,
	}, nil
}

// normalizeField maps OMDB's "N/A" marker to an absent value.
func normalizeField(v string) string {
	if v == "N/A" {
		return ""
	}
	return v
}
