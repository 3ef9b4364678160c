package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-api/internal/adapter/http/handler"
	"github.com/ressKim-io/sentiment-api/internal/adapter/http/middleware"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/config"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/metrics"
	"github.com/ressKim-io/sentiment-api/internal/usecase"
)

// Setup creates and configures the Gin router. m may be nil to run
// without metrics.
func Setup(predictUC usecase.PredictUsecase, m *metrics.Metrics, static *config.StaticConfig, logger *zap.Logger) (*gin.Engine, error) {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	if m != nil {
		router.Use(middleware.Metrics(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Health endpoints
	healthHandler := handler.NewHealthHandler(predictUC)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prediction
	predictHandler := handler.NewPredictHandler(predictUC)
	router.POST("/predict", predictHandler.Predict)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/model", predictHandler.ModelInfo)
	}

	// Web client
	if static != nil && static.Enabled {
		if err := mountStatic(router, static.Dir); err != nil {
			return nil, err
		}
	}

	router.NoRoute(handler.NotFound)

	return router, nil
}
