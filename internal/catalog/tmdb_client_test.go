package catalog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestTrendingMapsAndLimitsResults(t *testing.T) {
	client := NewTMDBClient("test-key", &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/3/trending/movie/week", req.URL.Path)
			assert.Equal(t, "test-key", req.URL.Query().Get("api_key"))
			return jsonResponse(http.StatusOK, `{"results":[
				{"id":1,"title":"One","poster_path":"/a.jpg","release_date":"2024-05-01"},
				{"id":2,"title":"Two","poster_path":"","release_date":"2023-01-01"},
				{"id":3,"title":"Three","poster_path":"/c.jpg","release_date":""},
				{"id":4,"title":"Four","poster_path":"/d.jpg","release_date":"2022-01-01"},
				{"id":5,"title":"Five","poster_path":"/e.jpg","release_date":"2021-01-01"},
				{"id":6,"title":"Six","poster_path":"/f.jpg","release_date":"2020-01-01"}
			]}`), nil
		}),
	})

	movies, err := client.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 5, "lists are capped at five entries")

	assert.Equal(t, "One", movies[0].Title)
	assert.Equal(t, "2024", movies[0].Year)
	assert.Equal(t, "https://image.tmdb.org/t/p/w342/a.jpg", movies[0].PosterURL)
	assert.Equal(t, "https://www.themoviedb.org/movie/1", movies[0].Link)
	assert.Empty(t, movies[1].PosterURL)
	assert.Empty(t, movies[2].Year)
}

func TestListFailsOnServerError(t *testing.T) {
	client := NewTMDBClient("test-key", &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
				Status:     "429 Too Many Requests",
				Body:       io.NopCloser(bytes.NewBufferString("")),
				Header:     make(http.Header),
			}, nil
		}),
	})

	_, err := client.TopRated(context.Background())
	require.Error(t, err)
}

func TestListRequiresAPIKey(t *testing.T) {
	client := NewTMDBClient("", nil)
	assert.False(t, client.IsConfigured())

	_, err := client.Upcoming(context.Background())
	require.Error(t, err)
}
