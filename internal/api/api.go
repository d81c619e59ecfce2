package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-chef/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupAPI registers the health check and recipe routes on router
func SetupAPI(router gin.IRoutes, recipes service.IRecipeService, logger *zap.Logger) {
	router.GET("/health", HealthCheck)

	recipeHandler := NewRecipeHandler(recipes, logger)
	recipeHandler.RegisterRoutes(router)
}
