package types

// CreateRecipeCommand is the request body for recipe creation. Cook time
// arrives as an (hours, minutes) pair and is stored as total minutes.
type CreateRecipeCommand struct {
	Name              string                    `json:"name" binding:"required"`
	TimeToCookHours   int                       `json:"time_to_cook_hours"`
	TimeToCookMinutes int                       `json:"time_to_cook_minutes"`
	Method            string                    `json:"method"`
	IsVegetarian      bool                      `json:"is_vegetarian"`
	IsVegan           bool                      `json:"is_vegan"`
	Ingredients       []CreateIngredientCommand `json:"ingredients"`
}

type CreateIngredientCommand struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// UpdateRecipeCommand carries a partial update: nil fields keep their
// current values. The cook time is replaced only when both hours and
// minutes are set. A nil Ingredients slice leaves the ingredient list
// untouched; a non-nil slice (even empty) replaces it positionally.
type UpdateRecipeCommand struct {
	ID                uint                      `json:"id"`
	Name              *string                   `json:"name"`
	TimeToCookHours   *int                      `json:"time_to_cook_hours"`
	TimeToCookMinutes *int                      `json:"time_to_cook_minutes"`
	Method            *string                   `json:"method"`
	IsVegetarian      *bool                     `json:"is_vegetarian"`
	IsVegan           *bool                     `json:"is_vegan"`
	Ingredients       []UpdateIngredientCommand `json:"ingredients"`
}

type UpdateIngredientCommand struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// RecipeSummary is the list projection; TimeToCook is rendered as
// "<total minutes> minutes".
type RecipeSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	TimeToCook string `json:"time_to_cook"`
}

// RecipeDetail is the single-item projection. Each ingredient quantity is
// rendered as "<quantity> <unit>".
type RecipeDetail struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Method      string             `json:"method"`
	Ingredients []IngredientDetail `json:"ingredients"`
}

type IngredientDetail struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}
