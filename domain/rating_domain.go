package domain

import "errors"

var (
	MessageSuccessRateRecipe = "recipe rated successfully"
	MessageSuccessGetRatings = "success get ratings"
	MessageSuccessGetPopular = "success get popular recipes"

	MessageFailedRateRecipe = "failed to rate recipe"
	MessageFailedGetRatings = "failed to get ratings"
	MessageFailedGetPopular = "failed to get popular recipes"

	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

type (
	RateRecipeRequest struct {
		Rating int `json:"rating" validate:"gte=0,lte=5"`
	}

	RatingResponse struct {
		UserID   string `json:"user_id"`
		RecipeID uint   `json:"recipe_id"`
		Rating   int    `json:"rating"`
	}

	// PopularRecipe mirrors the columns of the ranked average-rating query.
	PopularRecipe struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		DishCategory string  `json:"dish_category"`
		Cuisine      string  `json:"cuisine"`
		AvgRating    float64 `json:"avg_rating"`
	}
)
