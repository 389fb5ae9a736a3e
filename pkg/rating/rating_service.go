package rating

import (
	"context"
	"math"
	"strings"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"
)

type (
	RatingService interface {
		RateRecipe(ctx context.Context, req domain.RateRecipeRequest, username string, recipeID uint) error
		GetRecipeRatings(ctx context.Context, recipeID uint) ([]domain.RatingResponse, error)
		GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func (s *ratingService) RateRecipe(ctx context.Context, req domain.RateRecipeRequest, username string, recipeID uint) error {
	if req.Rating < 0 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}

	exists, err := s.ratingRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	return s.ratingRepository.UpsertRating(ctx, username, recipeID, req.Rating)
}

func (s *ratingService) GetRecipeRatings(ctx context.Context, recipeID uint) ([]domain.RatingResponse, error) {
	exists, err := s.ratingRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRecipeNotFound
	}

	ratings, err := s.ratingRepository.GetRatingsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return toRatingResponses(ratings), nil
}

func (s *ratingService) GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error) {
	if limit < 1 {
		limit = 5
	}
	return s.ratingRepository.GetTopRated(ctx, limit)
}

// RenderStars rounds the mean half-up and renders five star symbols, so an
// unrated recipe shows five empty stars rather than an error.
func RenderStars(average float64) string {
	filled := int(math.Floor(average + 0.5))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

func toRatingResponses(ratings []*entities.Rating) []domain.RatingResponse {
	result := make([]domain.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, domain.RatingResponse{
			UserID:   r.UserID,
			RecipeID: r.RecipeID,
			Rating:   r.Rating,
		})
	}
	return result
}
