package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc"

	"github.com/shop2008/movie-recommendation-app/internal/catalog"
)

// CatalogSource supplies the landing-page movie lists.
type CatalogSource interface {
	IsConfigured() bool
	Trending(ctx context.Context) ([]catalog.Movie, error)
	TopRated(ctx context.Context) ([]catalog.Movie, error)
	Upcoming(ctx context.Context) ([]catalog.Movie, error)
}

// CatalogHandler serves GET /default-movie-lists. The three lists are
// fetched concurrently; a failed list comes back empty rather than
// failing the whole response.
type CatalogHandler struct {
	source  CatalogSource
	timeout time.Duration
}

func NewCatalogHandler(source CatalogSource, timeout time.Duration) *CatalogHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CatalogHandler{source: source, timeout: timeout}
}

func (h *CatalogHandler) Handle(c *gin.Context) {
	if h.source == nil || !h.source.IsConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Movie catalog is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	lists := catalog.Lists{}
	var wg conc.WaitGroup
	wg.Go(func() { lists.Trending = h.fetch(ctx, "trending", h.source.Trending) })
	wg.Go(func() { lists.TopRated = h.fetch(ctx, "top rated", h.source.TopRated) })
	wg.Go(func() { lists.Upcoming = h.fetch(ctx, "upcoming", h.source.Upcoming) })
	wg.Wait()

	c.JSON(http.StatusOK, lists)
}

func (h *CatalogHandler) fetch(ctx context.Context, name string, list func(context.Context) ([]catalog.Movie, error)) []catalog.Movie {
	movies, err := list(ctx)
	if err != nil {
		log.Printf("[TMDB] %s list failed: %v", name, err)
		return []catalog.Movie{}
	}
	return movies
}
