package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Completion string `json:"completion"`
	Store      string `json:"store"`
}

// HealthHandler reports liveness and readiness. The completion client is
// required for readiness; the document store is optional and only shows
// up as degraded.
type HealthHandler struct {
	completionReady bool
	storeReady      bool
}

func NewHealthHandler(completionReady, storeReady bool) *HealthHandler {
	return &HealthHandler{completionReady: completionReady, storeReady: storeReady}
}

// Health returns the health status of the service
// Used for Cloud Run liveness probe
func (h *HealthHandler) Health(c *gin.Context) {
	completion := "unavailable"
	if h.completionReady {
		completion = "ready"
	}
	storeStatus := "unavailable"
	if h.storeReady {
		storeStatus = "ready"
	}

	status := "healthy"
	if !h.completionReady {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Completion: completion,
		Store:      storeStatus,
	})
}

// Readiness returns whether the service is ready to accept traffic
// Used for Cloud Run startup probe - stricter than health
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.completionReady {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "completion_client_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
