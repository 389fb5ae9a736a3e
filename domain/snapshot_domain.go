package domain

import "errors"

var (
	MessageSuccessExport = "database exported successfully"
	MessageSuccessImport = "database imported successfully"
	MessageSuccessWipe   = "database wiped and recreated"

	MessageFailedExport = "failed to export database"
	MessageFailedImport = "failed to import database"
	MessageFailedWipe   = "failed to wipe database"

	ErrSnapshotNotFound = errors.New("no snapshot file found")
)

type (
	// Snapshot row types carry exactly the public columns, so a dump taken
	// here round-trips through Import with no bookkeeping fields attached.
	UserRow struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	RecipeRow struct {
		ID           uint   `json:"id"`
		Name         string `json:"name"`
		DishCategory string `json:"dish_category"`
		Cuisine      string `json:"cuisine"`
		CookingTime  int    `json:"cooking_time"`
		RecipeSteps  string `json:"recipe_steps"`
		UserID       string `json:"user_id"`
	}

	IngredientRow struct {
		Name string `json:"name"`
	}

	RecipeIngredientRow struct {
		RecipeID       uint   `json:"recipe_id"`
		IngredientName string `json:"ingredient_name"`
		Amount         string `json:"amount"`
	}

	FavouriteRow struct {
		UserID   string `json:"user_id"`
		RecipeID uint   `json:"recipe_id"`
	}

	RatingRow struct {
		UserID   string `json:"user_id"`
		RecipeID uint   `json:"recipe_id"`
		Rating   int    `json:"rating"`
	}

	Snapshot struct {
		Users             []UserRow             `json:"users"`
		Recipes           []RecipeRow           `json:"recipes"`
		Ingredients       []IngredientRow       `json:"ingredients"`
		RecipeIngredients []RecipeIngredientRow `json:"recipe_ingredients"`
		Favourites        []FavouriteRow        `json:"favourites"`
		Ratings           []RatingRow           `json:"ratings"`
	}
)
