package service

import (
	"context"

	"github.com/pageza/alchemorsel-chef/backend/internal/types"
)

// ILLMService is the completion API as seen by the recipe service
type ILLMService interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// IRecipeService defines the interface for recipe generation
type IRecipeService interface {
	GenerateRecipe(ctx context.Context, ingredients string) (*types.GenerateRecipeResponse, error)
}

var (
	_ ILLMService    = (*LLMService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
)
