package recipe

import (
	"context"
	"errors"
	"strings"

	"recipe-share-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		SearchIngredientNames(ctx context.Context, query string) ([]string, error)
		SearchDishCategories(ctx context.Context, query string) ([]string, error)
		SearchCuisines(ctx context.Context, query string) ([]string, error)
		AddFavourite(ctx context.Context, username string, recipeID uint) error
		GetFavouriteRecipes(ctx context.Context, username string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipeWithIngredients inserts the recipe, its ingredients (created on
// demand) and the join rows as one transaction, so a constraint failure on
// any row leaves nothing behind.
func (r *recipeRepository) CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ing := entities.Ingredient{Name: ingredients[i].IngredientName}
			// ON CONFLICT DO NOTHING keeps the name unique even when two
			// writers race on the same new ingredient.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing).Error; err != nil {
				return err
			}

			ingredients[i].RecipeID = recipe.ID
			if err := tx.Create(&ingredients[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Ingredients").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error) {
	ing := entities.Ingredient{Name: name}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ing).Error; err != nil {
		return nil, err
	}

	var found entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&found).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) SearchIngredientNames(ctx context.Context, query string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *recipeRepository) SearchDishCategories(ctx context.Context, query string) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("dish_category").
		Where("LOWER(dish_category) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("dish_category").
		Pluck("dish_category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) SearchCuisines(ctx context.Context, query string) ([]string, error) {
	var cuisines []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("cuisine").
		Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("cuisine").
		Pluck("cuisine", &cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

// AddFavourite is a no-op when the pair already exists.
func (r *recipeRepository) AddFavourite(ctx context.Context, username string, recipeID uint) error {
	var existing entities.Favourite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", username, recipeID).
		First(&existing).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favourite := entities.Favourite{
		UserID:   username,
		RecipeID: recipeID,
	}
	return r.db.WithContext(ctx).Create(&favourite).Error
}

func (r *recipeRepository) GetFavouriteRecipes(ctx context.Context, username string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN favourites ON recipes.id = favourites.recipe_id").
		Where("favourites.user_id = ?", username).
		Order("recipes.id").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
