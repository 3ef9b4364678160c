package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/sentiment-api/internal/usecase"
)

// PredictHandler handles sentiment prediction requests
type PredictHandler struct {
	predictUC usecase.PredictUsecase
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictUC usecase.PredictUsecase) *PredictHandler {
	return &PredictHandler{predictUC: predictUC}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var input usecase.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.predictUC.Predict(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// ModelInfo handles GET /api/v1/model
func (h *PredictHandler) ModelInfo(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.predictUC.ModelInfo(c.Request.Context()))
}
