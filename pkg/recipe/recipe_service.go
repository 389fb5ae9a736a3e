package recipe

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"
	"recipe-share-backend/pkg/rating"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest, username string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error)
		SearchRecipes(ctx context.Context, query string) ([]domain.RecipeResponse, error)
		GetIngredients(ctx context.Context) ([]string, error)
		SuggestIngredients(ctx context.Context, query string) ([]string, error)
		SuggestCategories(ctx context.Context, query string) ([]string, error)
		SuggestCuisines(ctx context.Context, query string) ([]string, error)
		AddFavourite(ctx context.Context, username string, recipeID uint) error
		GetFavourites(ctx context.Context, username string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		ratingRepository rating.RatingRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ratingRepository rating.RatingRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
	}
}

// FormatSteps joins the discrete step descriptions into the single numbered
// text blob stored on the recipe. The discrete steps are not kept.
func FormatSteps(steps []string) string {
	numbered := make([]string, 0, len(steps))
	for i, step := range steps {
		numbered = append(numbered, fmt.Sprintf("Step %d: %s", i+1, step))
	}
	return strings.Join(numbered, "\n")
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest, username string) (domain.RecipeResponse, error) {
	if req.CookingTimeHours < 0 || req.CookingTimeMinutes < 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}
	if len(req.Steps) == 0 {
		return domain.RecipeResponse{}, domain.ErrNoSteps
	}

	recipe := entities.Recipe{
		Name:         req.Name,
		DishCategory: req.DishCategory,
		Cuisine:      req.Cuisine,
		CookingTime:  req.CookingTimeHours*60 + req.CookingTimeMinutes,
		RecipeSteps:  FormatSteps(req.Steps),
		UserID:       username,
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.RecipeIngredient{
			IngredientName: ing.Name,
			Amount:         ing.Amount,
		})
	}

	if err := s.recipeRepository.CreateRecipeWithIngredients(ctx, &recipe, ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(&recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	average, err := s.ratingRepository.GetAverageRating(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			Name:   ing.IngredientName,
			Amount: ing.Amount,
		})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse:     toRecipeResponse(recipe),
		RecipeSteps:        recipe.RecipeSteps,
		Ingredients:        ingredients,
		AverageRating:      average,
		AverageRatingStars: rating.RenderStars(average),
	}, nil
}

// SearchRecipes treats the query as a case-insensitive regular expression
// matched against name, dish category and cuisine. A query that does not
// compile falls back to a literal substring match. Empty query lists all.
func (s *recipeService) SearchRecipes(ctx context.Context, query string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return toRecipeResponses(recipes), nil
	}

	regex, err := regexp.Compile("(?i)" + query)
	if err != nil {
		regex = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}

	matched := make([]domain.RecipeResponse, 0)
	for _, recipe := range recipes {
		if regex.MatchString(recipe.Name) || regex.MatchString(recipe.DishCategory) || regex.MatchString(recipe.Cuisine) {
			matched = append(matched, toRecipeResponse(recipe))
		}
	}
	return matched, nil
}

func (s *recipeService) GetIngredients(ctx context.Context) ([]string, error) {
	ingredients, err := s.recipeRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names, nil
}

// Suggestion lookups return nothing for an empty query rather than the
// whole table.
func (s *recipeService) SuggestIngredients(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.recipeRepository.SearchIngredientNames(ctx, query)
}

func (s *recipeService) SuggestCategories(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.recipeRepository.SearchDishCategories(ctx, query)
}

func (s *recipeService) SuggestCuisines(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.recipeRepository.SearchCuisines(ctx, query)
}

func (s *recipeService) AddFavourite(ctx context.Context, username string, recipeID uint) error {
	_, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.AddFavourite(ctx, username, recipeID)
}

func (s *recipeService) GetFavourites(ctx context.Context, username string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetFavouriteRecipes(ctx, username)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		DishCategory: r.DishCategory,
		Cuisine:      r.Cuisine,
		CookingTime:  r.CookingTime,
		UserID:       r.UserID,
	}
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipeResponse(r))
	}
	return result
}
