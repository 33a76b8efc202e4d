package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/sanitize"
)

const (
	// DefaultMaxResults applies when the request omits maxResults.
	DefaultMaxResults = 5
	// RecommendTimeout bounds one full pipeline run, enrichment included.
	RecommendTimeout = 30 * time.Second
)

// Recommender is the orchestration pipeline as seen from the HTTP layer.
type Recommender interface {
	Recommend(ctx context.Context, filters model.FilterSet) ([]model.EnrichedRecommendation, error)
}

// LikedTitlesSource provides a user's liked titles for the exclusion list.
type LikedTitlesSource interface {
	TitlesByUser(ctx context.Context, userID string) ([]string, error)
}

type RecommendationRequest struct {
	UserID     string   `json:"userId"`
	Preference []string `json:"preference"`
	Languages  []string `json:"languages"`
	Genres     []string `json:"genres"`
	MaxResults int      `json:"maxResults" binding:"omitempty,min=1,max=50"`
}

type RecommendationResponse struct {
	Recommendations []model.EnrichedRecommendation `json:"recommendations"`
}

// RecommendationHandler serves POST /generate-movie-recommendations.
// The likes source is optional: without a configured document store the
// exclusion list is simply empty.
type RecommendationHandler struct {
	recommender Recommender
	likes       LikedTitlesSource
	timeout     time.Duration
}

func NewRecommendationHandler(recommender Recommender, likes LikedTitlesSource, timeout time.Duration) *RecommendationHandler {
	if timeout <= 0 {
		timeout = RecommendTimeout
	}
	return &RecommendationHandler{recommender: recommender, likes: likes, timeout: timeout}
}

func (h *RecommendationHandler) Handle(c *gin.Context) {
	start := time.Now()

	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	if req.MaxResults == 0 {
		req.MaxResults = DefaultMaxResults
	}

	filters := model.FilterSet{
		Preferences: sanitize.List(req.Preference),
		Languages:   sanitize.List(req.Languages),
		Genres:      sanitize.List(req.Genres),
		MaxResults:  req.MaxResults,
	}

	if userID := strings.TrimSpace(req.UserID); userID != "" && h.likes != nil {
		titles, err := h.likes.TitlesByUser(c.Request.Context(), userID)
		if err != nil {
			// Liked history is an enhancement, not a prerequisite.
			log.Printf("[LIKES] could not load liked titles for %s: %v", userID, err)
		} else {
			filters.ExcludedTitles = titles
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	recommendations, err := h.recommender.Recommend(ctx, filters)
	if err != nil {
		log.Printf("[RECOMMEND] failed after %v: %v", time.Since(start), err)

		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timed out. Please try again.",
				"code":  "TIMEOUT",
			})
			return
		}
		if isRateLimitError(err) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "The recommendation service is over its quota. Please try again later.",
				"code":       "PROVIDER_RATE_LIMITED",
				"retryAfter": 60,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An error occurred while generating recommendations.",
			"code":  "UPSTREAM_ERROR",
		})
		return
	}

	if recommendations == nil {
		recommendations = []model.EnrichedRecommendation{}
	}
	log.Printf("[RECOMMEND] completed in %v, %d results", time.Since(start), len(recommendations))
	c.JSON(http.StatusOK, RecommendationResponse{Recommendations: recommendations})
}

// isRateLimitError checks whether the completion provider reported
// resource exhaustion.
func isRateLimitError(err error) bool {
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
