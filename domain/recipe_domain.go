package domain

import "errors"

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessGetIngredients  = "success get ingredients"
	MessageSuccessGetSuggestions  = "success get suggestions"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedGetIngredients  = "failed to get ingredients"
	MessageFailedGetSuggestions  = "failed to get suggestions"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidCookingTime = errors.New("cooking time must not be negative")
	ErrNoSteps            = errors.New("recipe needs at least one step")
)

type (
	RecipeIngredientRequest struct {
		Name   string `json:"name" validate:"required,max=100"`
		Amount string `json:"amount" validate:"required,max=50"`
	}

	AddRecipeRequest struct {
		Name               string                    `json:"name" validate:"required,max=100"`
		DishCategory       string                    `json:"dish_category" validate:"required,max=50"`
		Cuisine            string                    `json:"cuisine" validate:"required,max=50"`
		CookingTimeHours   int                       `json:"cooking_time_hours" validate:"gte=0"`
		CookingTimeMinutes int                       `json:"cooking_time_minutes" validate:"gte=0"`
		Steps              []string                  `json:"steps" validate:"required,min=1,dive,required"`
		Ingredients        []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	RecipeIngredientResponse struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	RecipeResponse struct {
		ID           uint   `json:"id"`
		Name         string `json:"name"`
		DishCategory string `json:"dish_category"`
		Cuisine      string `json:"cuisine"`
		CookingTime  int    `json:"cooking_time"`
		UserID       string `json:"user_id"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		RecipeSteps        string                     `json:"recipe_steps"`
		Ingredients        []RecipeIngredientResponse `json:"ingredients"`
		AverageRating      float64                    `json:"average_rating"`
		AverageRatingStars string                     `json:"average_rating_stars"`
	}

	SuggestionsResponse struct {
		Suggestions []string `json:"suggestions"`
	}
)
