package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shop2008/movie-recommendation-app/internal/metadata"
	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/sanitize"
)

// MetadataLookup resolves one title against the metadata provider.
type MetadataLookup interface {
	FetchDetails(ctx context.Context, title string) (*model.MovieDetail, error)
}

// MovieDetailsHandler serves GET /movie-details?title=...
type MovieDetailsHandler struct {
	metadata MetadataLookup
	timeout  time.Duration
}

func NewMovieDetailsHandler(lookup MetadataLookup, timeout time.Duration) *MovieDetailsHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MovieDetailsHandler{metadata: lookup, timeout: timeout}
}

func (h *MovieDetailsHandler) Handle(c *gin.Context) {
	title := sanitize.Text(c.Query("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Movie title is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	detail, err := h.metadata.FetchDetails(ctx, title)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie details not found"})
			return
		}
		log.Printf("[OMDB] details lookup for %q failed: %v", title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch movie details"})
		return
	}

	// Keyed by the requested title so callers can batch lookups client side.
	c.JSON(http.StatusOK, map[string]*model.MovieDetail{title: detail})
}
