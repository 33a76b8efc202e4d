package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop2008/movie-recommendation-app/internal/metadata"
	"github.com/shop2008/movie-recommendation-app/internal/model"
)

type stubLookup struct {
	detail *model.MovieDetail
	err    error
	got    string
}

func (s *stubLookup) FetchDetails(_ context.Context, title string) (*model.MovieDetail, error) {
	s.got = title
	return s.detail, s.err
}

func getDetails(h *MovieDetailsHandler, target string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/movie-details", h.Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestMovieDetails_Found(t *testing.T) {
	lookup := &stubLookup{detail: &model.MovieDetail{Title: "Dune", Year: "2021", Rating: "8.0"}}
	h := NewMovieDetailsHandler(lookup, 0)

	w := getDetails(h, "/movie-details?title=Dune")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune", lookup.got)

	var resp map[string]model.MovieDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "Dune")
	assert.Equal(t, "2021", resp["Dune"].Year)
}

func TestMovieDetails_MissingTitle(t *testing.T) {
	h := NewMovieDetailsHandler(&stubLookup{}, 0)

	w := getDetails(h, "/movie-details")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovieDetails_NotFound(t *testing.T) {
	h := NewMovieDetailsHandler(&stubLookup{err: metadata.ErrNotFound}, 0)

	w := getDetails(h, "/movie-details?title=Nonexistent")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieDetails_ProviderError(t *testing.T) {
	h := NewMovieDetailsHandler(&stubLookup{err: errors.New("omdb 500")}, 0)

	w := getDetails(h, "/movie-details?title=Dune")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
