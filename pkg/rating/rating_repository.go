package rating

import (
	"context"
	"errors"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		RecipeExists(ctx context.Context, recipeID uint) (bool, error)
		UpsertRating(ctx context.Context, username string, recipeID uint, value int) error
		GetRatingsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Rating, error)
		GetAverageRating(ctx context.Context, recipeID uint) (float64, error)
		GetTopRated(ctx context.Context, limit int) ([]domain.PopularRecipe, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) RecipeExists(ctx context.Context, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertRating overwrites an existing (user, recipe) rating instead of
// adding a second row.
func (r *ratingRepository) UpsertRating(ctx context.Context, username string, recipeID uint, value int) error {
	var existing entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", username, recipeID).
		First(&existing).Error; err == nil {
		existing.Rating = value
		return r.db.WithContext(ctx).Save(&existing).Error
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rating := entities.Rating{
		UserID:   username,
		RecipeID: recipeID,
		Rating:   value,
	}
	return r.db.WithContext(ctx).Create(&rating).Error
}

func (r *ratingRepository) GetRatingsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Rating, error) {
	var ratings []*entities.Rating
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("user_id").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetAverageRating reports 0 for a recipe with no ratings.
func (r *ratingRepository) GetAverageRating(ctx context.Context, recipeID uint) (float64, error) {
	var average float64
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("recipe_id = ?", recipeID).
		Scan(&average).Error; err != nil {
		return 0, err
	}
	return average, nil
}

// GetTopRated ranks recipes by mean rating descending, computed live with a
// LEFT JOIN so unrated recipes rank at 0 instead of being dropped. Ties
// break by recipe id, which keeps the order stable across calls.
func (r *ratingRepository) GetTopRated(ctx context.Context, limit int) ([]domain.PopularRecipe, error) {
	var popular []domain.PopularRecipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.id, recipes.name, recipes.dish_category, recipes.cuisine, COALESCE(AVG(ratings.rating), 0) AS avg_rating").
		Joins("LEFT JOIN ratings ON ratings.recipe_id = recipes.id").
		Group("recipes.id, recipes.name, recipes.dish_category, recipes.cuisine").
		Order("avg_rating DESC, recipes.id").
		Limit(limit).
		Scan(&popular).Error; err != nil {
		return nil, err
	}
	return popular, nil
}
