package types

// GenerateRecipeRequest is the body of POST /generate_recipe
type GenerateRecipeRequest struct {
	Ingredients string `json:"ingredients"`
}

// GenerateRecipeResponse is returned on success. RecipeData is the JSON object the
// model embedded in its answer, or an empty object when none could be decoded.
type GenerateRecipeResponse struct {
	FormattedRecipe string         `json:"formatted_recipe"`
	RecipeData      map[string]any `json:"recipe_data"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecipeRecord is the typed view of the structured recipe the model is asked to emit
type RecipeRecord struct {
	RecipeName    string    `json:"recipe_name" mapstructure:"recipe_name"`
	Ingredients   []string  `json:"ingredients" mapstructure:"ingredients"`
	Instructions  []string  `json:"instructions" mapstructure:"instructions"`
	EstimatedTime string    `json:"estimated_time" mapstructure:"estimated_time"`
	Nutrition     Nutrition `json:"nutrition" mapstructure:"nutrition"`
}

// Nutrition holds per-serving values as the model wrote them
type Nutrition struct {
	Calories string `json:"calories" mapstructure:"calories"`
	Protein  string `json:"protein" mapstructure:"protein"`
	Fat      string `json:"fat" mapstructure:"fat"`
	Carbs    string `json:"carbs" mapstructure:"carbs"`
}

// IsEmpty reports whether no recipe field was populated
func (r RecipeRecord) IsEmpty() bool {
	return r.RecipeName == "" && len(r.Ingredients) == 0 && len(r.Instructions) == 0 &&
		r.EstimatedTime == "" && r.Nutrition == (Nutrition{})
}
