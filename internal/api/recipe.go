package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-chef/backend/internal/service"
	"github.com/pageza/alchemorsel-chef/backend/internal/types"
)

// InvalidIngredientsMessage is returned with status 400 for missing or too short input
const InvalidIngredientsMessage = "Please provide at least one valid ingredient"

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger.Named("api"),
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/generate_recipe", h.GenerateRecipe)
}

// GenerateRecipe handles POST /generate_recipe. Failures other than bad input are
// attached to the context and rendered as 500 by middleware.ErrorHandler.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp, err := h.recipes.GenerateRecipe(c.Request.Context(), req.Ingredients)
	if errors.Is(err, service.ErrInvalidIngredients) {
		h.logger.Debug("rejected ingredients", zap.String("ingredients", req.Ingredients))
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: InvalidIngredientsMessage})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
