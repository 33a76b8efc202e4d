package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/store"
)

// LikeStore is the persistence surface for per-user liked movies.
type LikeStore interface {
	Create(ctx context.Context, userID string, detail model.MovieDetail) (model.LikedMovie, error)
	Delete(ctx context.Context, userID, title string) error
	ListByUser(ctx context.Context, userID string) ([]model.LikedMovie, error)
}

// LikeHandler serves the /users/:userId/likes routes. With no store
// configured every route answers 503.
type LikeHandler struct {
	likes   LikeStore
	timeout time.Duration
}

func NewLikeHandler(likes LikeStore, timeout time.Duration) *LikeHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LikeHandler{likes: likes, timeout: timeout}
}

func (h *LikeHandler) unavailable(c *gin.Context) bool {
	if h.likes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Liked movies are not available"})
		return true
	}
	return false
}

// List handles GET /users/:userId/likes.
func (h *LikeHandler) List(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	likes, err := h.likes.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		if errors.Is(err, store.ErrUserIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User id is required"})
			return
		}
		log.Printf("[LIKES] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load liked movies"})
		return
	}
	if likes == nil {
		likes = []model.LikedMovie{}
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// Create handles POST /users/:userId/likes. The body is the movie detail
// to remember; the title inside it identifies the like.
func (h *LikeHandler) Create(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	var detail model.MovieDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	like, err := h.likes.Create(ctx, c.Param("userId"), detail)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyLiked):
			c.JSON(http.StatusConflict, gin.H{"error": "Movie already liked"})
		case errors.Is(err, store.ErrUserIDRequired), errors.Is(err, store.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[LIKES] create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save liked movie"})
		}
		return
	}
	c.JSON(http.StatusCreated, like)
}

// Delete handles DELETE /users/:userId/likes/:title.
func (h *LikeHandler) Delete(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	err := h.likes.Delete(ctx, c.Param("userId"), c.Param("title"))
	if err != nil {
		if errors.Is(err, store.ErrUserIDRequired) || errors.Is(err, store.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[LIKES] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove liked movie"})
		return
	}
	c.Status(http.StatusNoContent)
}
