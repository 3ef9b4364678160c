package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/sentiment-api/internal/usecase"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	predictUC usecase.PredictUsecase
}

// NewHealthHandler creates a new health handler. A nil usecase reports the
// model as not loaded.
func NewHealthHandler(predictUC usecase.PredictUsecase) *HealthHandler {
	return &HealthHandler{predictUC: predictUC}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	healthy := true

	if h.predictUC != nil {
		info := h.predictUC.ModelInfo(c.Request.Context())
		components["vectorizer"] = "ok: " + info.VectorizerType
		components["classifier"] = "ok: " + info.ClassifierType
	} else {
		components["vectorizer"] = "not loaded"
		components["classifier"] = "not loaded"
		healthy = false
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.predictUC == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
