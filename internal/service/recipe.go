package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-chef/backend/internal/types"
)

// MinIngredientsLength is the shortest accepted ingredient text, in characters
const MinIngredientsLength = 3

const (
	outcomeOK           = "ok"
	outcomeNoJSON       = "no_json"
	outcomeInvalidInput = "invalid_input"
	outcomeUpstream     = "upstream_error"
)

var recipeGenerationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipe_generations_total",
		Help: "Recipe generation attempts by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(recipeGenerationsTotal)
}

// RecipeService turns an ingredient list into a generated recipe
type RecipeService struct {
	llm    ILLMService
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(llm ILLMService, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		llm:    llm,
		logger: logger.Named("recipe"),
	}
}

// GenerateRecipe validates the ingredients, asks the model for a recipe and splits
// the answer into prose and structured data.
func (s *RecipeService) GenerateRecipe(ctx context.Context, ingredients string) (*types.GenerateRecipeResponse, error) {
	ingredients = strings.TrimSpace(ingredients)
	if utf8.RuneCountInString(ingredients) < MinIngredientsLength {
		recipeGenerationsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return nil, ErrInvalidIngredients
	}

	content, err := s.llm.Complete(ctx, RecipeSystemPrompt, BuildRecipePrompt(ingredients))
	if err != nil {
		recipeGenerationsTotal.WithLabelValues(outcomeUpstream).Inc()
		return nil, fmt.Errorf("failed to generate recipe: %w", err)
	}

	formatted, data := ExtractRecipe(content)

	if len(data) == 0 {
		recipeGenerationsTotal.WithLabelValues(outcomeNoJSON).Inc()
		s.logger.Info("model answer carried no decodable recipe JSON",
			zap.Int("content_length", len(content)),
		)
	} else {
		recipeGenerationsTotal.WithLabelValues(outcomeOK).Inc()
		if record, err := DecodeRecipeRecord(data); err != nil {
			s.logger.Debug("recipe JSON does not match the expected shape", zap.Error(err))
		} else {
			s.logger.Info("recipe generated",
				zap.String("recipe_name", record.RecipeName),
				zap.Int("ingredients", len(record.Ingredients)),
				zap.Int("steps", len(record.Instructions)),
			)
		}
	}

	return &types.GenerateRecipeResponse{
		FormattedRecipe: formatted,
		RecipeData:      data,
	}, nil
}
