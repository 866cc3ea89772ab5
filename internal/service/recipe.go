package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/recipehub/backend/internal/models"
	"github.com/recipehub/backend/internal/types"
	"gorm.io/gorm"
)

// ErrRecipeNotFound is returned when no live recipe matches the requested id.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a new recipe with its ingredients and returns the
// assigned id. The (hours, minutes) pair is collapsed into total minutes.
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd types.CreateRecipeCommand) (uint, error) {
	recipe := models.Recipe{
		Name:         cmd.Name,
		TimeToCook:   cmd.TimeToCookHours*60 + cmd.TimeToCookMinutes,
		Method:       cmd.Method,
		IsVegetarian: cmd.IsVegetarian,
		IsVegan:      cmd.IsVegan,
		IsDeleted:    false,
	}
	for _, ing := range cmd.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return 0, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe.ID, nil
}

// ListRecipes returns summaries of all live recipes. A non-empty query adds
// a keyword filter on the recipe name.
func (s *RecipeService) ListRecipes(ctx context.Context, query string) ([]types.RecipeSummary, error) {
	db := s.db.WithContext(ctx).Where("is_deleted = ?", false)
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(name) LIKE ?", like)
	}

	var recipes []models.Recipe
	if err := db.Find(&recipes).Error; err != nil {
		return nil, err
	}

	summaries := make([]types.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, types.RecipeSummary{
			ID:         r.ID,
			Name:       r.Name,
			TimeToCook: fmt.Sprintf("%d minutes", r.TimeToCook),
		})
	}
	return summaries, nil
}

// GetRecipe returns the detail projection of the live recipe with the given
// id, including its ingredients.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*types.RecipeDetail, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipeDetail(&recipe), nil
}

// UpdateRecipe applies a partial update and returns the updated detail.
// Scalar fields are replaced only when set on the command; the cook time is
// replaced only when both hours and minutes are set. A non-nil ingredient
// list is paired positionally against the existing ingredients, truncating
// to the shorter of the two: extra update items are ignored, trailing
// existing ingredients are removed.
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd types.UpdateRecipeCommand) (*types.RecipeDetail, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Ingredients").
			Where("id = ? AND is_deleted = ?", cmd.ID, false).
			First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		if cmd.Name != nil {
			recipe.Name = *cmd.Name
		}
		if cmd.Method != nil {
			recipe.Method = *cmd.Method
		}
		if cmd.IsVegetarian != nil {
			recipe.IsVegetarian = *cmd.IsVegetarian
		}
		if cmd.IsVegan != nil {
			recipe.IsVegan = *cmd.IsVegan
		}
		if cmd.TimeToCookHours != nil && cmd.TimeToCookMinutes != nil {
			recipe.TimeToCook = *cmd.TimeToCookHours*60 + *cmd.TimeToCookMinutes
		}

		if cmd.Ingredients != nil {
			kept := recipe.Ingredients
			if len(cmd.Ingredients) < len(kept) {
				dropped := kept[len(cmd.Ingredients):]
				ids := make([]uint, 0, len(dropped))
				for _, ing := range dropped {
					ids = append(ids, ing.ID)
				}
				if err := tx.Delete(&models.Ingredient{}, "id IN ?", ids).Error; err != nil {
					return err
				}
				kept = kept[:len(cmd.Ingredients)]
			}
			for i := range kept {
				upd := cmd.Ingredients[i]
				if upd.Name != nil {
					kept[i].Name = *upd.Name
				}
				if upd.Quantity != nil {
					kept[i].Quantity = *upd.Quantity
				}
				if upd.Unit != nil {
					kept[i].Unit = *upd.Unit
				}
			}
			recipe.Ingredients = kept
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return recipeDetail(&recipe), nil
}

// DeleteRecipe marks a recipe as deleted; the row stays in the store. The
// lookup is a plain point lookup, so deleting an already-deleted recipe
// succeeds again.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Model(&recipe).Update("is_deleted", true).Error
}

// SetImageURL records the stored image location on a live recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, id uint, url string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func recipeDetail(r *models.Recipe) *types.RecipeDetail {
	detail := &types.RecipeDetail{
		ID:          r.ID,
		Name:        r.Name,
		Method:      r.Method,
		Ingredients: make([]types.IngredientDetail, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		detail.Ingredients = append(detail.Ingredients, types.IngredientDetail{
			Name:     ing.Name,
			Quantity: formatQuantity(ing.Quantity, ing.Unit),
		})
	}
	return detail
}

func formatQuantity(quantity float64, unit string) string {
	amount := strconv.FormatFloat(quantity, 'f', -1, 64)
	return strings.TrimSpace(amount + " " + unit)
}
