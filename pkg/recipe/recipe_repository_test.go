package recipe

import (
	"context"
	"path/filepath"
	"testing"

	"recipe-share-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favourite{},
		&entities.Rating{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) {
	t.Helper()
	user := entities.User{Username: username, Name: "Test User", Password: "secret"}
	require.NoError(t, db.Create(&user).Error)
}

func createTestRecipe(t *testing.T, db *gorm.DB, username, name, category, cuisine string) *entities.Recipe {
	t.Helper()
	recipe := entities.Recipe{
		Name:         name,
		DishCategory: category,
		Cuisine:      cuisine,
		CookingTime:  30,
		RecipeSteps:  "Step 1: cook",
		UserID:       username,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func TestGetOrCreateIngredientDedupes(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreateIngredient(ctx, "Flour")
	require.NoError(t, err)

	second, err := repo.GetOrCreateIngredient(ctx, "Flour")
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateIngredientCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	_, err := repo.GetOrCreateIngredient(ctx, "Flour")
	require.NoError(t, err)
	_, err = repo.GetOrCreateIngredient(ctx, "flour")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateRecipeWithIngredients(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "alice")

	recipe := entities.Recipe{
		Name:         "Pancakes",
		DishCategory: "Breakfast",
		Cuisine:      "American",
		CookingTime:  20,
		RecipeSteps:  "Step 1: mix\nStep 2: fry",
		UserID:       "alice",
	}
	ingredients := []entities.RecipeIngredient{
		{IngredientName: "Flour", Amount: "2 cups"},
		{IngredientName: "Milk", Amount: "1 cup"},
	}

	require.NoError(t, repo.CreateRecipeWithIngredients(ctx, &recipe, ingredients))
	assert.NotZero(t, recipe.ID)

	var joinCount int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&joinCount).Error)
	assert.Equal(t, int64(2), joinCount)
}

func TestCreateRecipeReusesExistingIngredient(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "alice")

	first := entities.Recipe{Name: "Bread", DishCategory: "Baking", Cuisine: "French", CookingTime: 60, RecipeSteps: "Step 1: bake", UserID: "alice"}
	require.NoError(t, repo.CreateRecipeWithIngredients(ctx, &first, []entities.RecipeIngredient{
		{IngredientName: "Flour", Amount: "3 cups"},
	}))

	second := entities.Recipe{Name: "Cake", DishCategory: "Dessert", Cuisine: "French", CookingTime: 45, RecipeSteps: "Step 1: bake", UserID: "alice"}
	require.NoError(t, repo.CreateRecipeWithIngredients(ctx, &second, []entities.RecipeIngredient{
		{IngredientName: "Flour", Amount: "2 cups"},
	}))

	var ingredientCount int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("name = ?", "Flour").Count(&ingredientCount).Error)
	assert.Equal(t, int64(1), ingredientCount)

	var joinCount int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Where("ingredient_name = ?", "Flour").Count(&joinCount).Error)
	assert.Equal(t, int64(2), joinCount)
}

func TestAddFavouriteIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, "alice", "Soup", "Starter", "Thai")

	require.NoError(t, repo.AddFavourite(ctx, "alice", recipe.ID))
	require.NoError(t, repo.AddFavourite(ctx, "alice", recipe.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Favourite{}).Where("user_id = ? AND recipe_id = ?", "alice", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetFavouriteRecipes(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")
	soup := createTestRecipe(t, db, "alice", "Soup", "Starter", "Thai")
	createTestRecipe(t, db, "alice", "Stew", "Main", "Irish")

	require.NoError(t, repo.AddFavourite(ctx, "bob", soup.ID))

	favourites, err := repo.GetFavouriteRecipes(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, favourites, 1)
	assert.Equal(t, "Soup", favourites[0].Name)
}

func TestSuggestionQueries(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "alice")
	createTestRecipe(t, db, "alice", "Tiramisu", "Dessert", "Italian")
	createTestRecipe(t, db, "alice", "Panna Cotta", "Dessert", "Italian")
	createTestRecipe(t, db, "alice", "Pad Thai", "Main", "Thai")

	categories, err := repo.SearchDishCategories(ctx, "des")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dessert"}, categories)

	cuisines, err := repo.SearchCuisines(ctx, "THAI")
	require.NoError(t, err)
	assert.Equal(t, []string{"Thai"}, cuisines)

	_, err = repo.GetOrCreateIngredient(ctx, "Mascarpone")
	require.NoError(t, err)
	names, err := repo.SearchIngredientNames(ctx, "marc")
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = repo.SearchIngredientNames(ctx, "carp")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mascarpone"}, names)
}
