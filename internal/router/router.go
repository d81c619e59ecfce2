package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-chef/backend/internal/api"
	"github.com/pageza/alchemorsel-chef/backend/internal/middleware"
	"github.com/pageza/alchemorsel-chef/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(recipes service.IRecipeService, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger, "/health", "/metrics"),
		middleware.ErrorHandler(logger),
		middleware.CORS(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api.SetupAPI(router, recipes, logger)

	return router
}
