package rating

import (
	"context"
	"path/filepath"
	"testing"

	"recipe-share-backend/domain"
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

func seedUser(t *testing.T, db *gorm.DB, username string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{Username: username, Name: "Test", Password: "pw"}).Error)
}

func seedRecipe(t *testing.T, db *gorm.DB, username, name string) *entities.Recipe {
	t.Helper()
	recipe := entities.Recipe{
		Name:         name,
		DishCategory: "Main",
		Cuisine:      "Fusion",
		CookingTime:  15,
		RecipeSteps:  "Step 1: cook",
		UserID:       username,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func TestUpsertRatingOverwrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, "alice", "Stew")

	require.NoError(t, repo.UpsertRating(ctx, "alice", recipe.ID, 2))
	require.NoError(t, repo.UpsertRating(ctx, "alice", recipe.ID, 5))

	var ratings []entities.Rating
	require.NoError(t, db.Where("user_id = ? AND recipe_id = ?", "alice", recipe.ID).Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestGetAverageRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, "alice", "Stew")

	// No ratings yet means 0, not an error.
	average, err := repo.GetAverageRating(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), average)

	require.NoError(t, repo.UpsertRating(ctx, "alice", recipe.ID, 4))
	require.NoError(t, repo.UpsertRating(ctx, "bob", recipe.ID, 5))

	average, err = repo.GetAverageRating(ctx, recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, average, 0.0001)
}

func TestGetTopRatedOrderingAndZeroIncluded(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	seedUser(t, db, "alice")

	recipes := make([]*entities.Recipe, 0, 6)
	for i := 0; i < 6; i++ {
		recipes = append(recipes, seedRecipe(t, db, "alice", "Dish"))
	}

	raters := []string{"r1", "r2"}
	for _, r := range raters {
		seedUser(t, db, r)
	}
	rate := func(rec *entities.Recipe, values ...int) {
		for i, v := range values {
			require.NoError(t, repo.UpsertRating(ctx, raters[i], rec.ID, v))
		}
	}
	rate(recipes[0], 3, 3)
	rate(recipes[1], 4, 5)
	// recipes[2] stays unrated
	rate(recipes[3], 5, 5)
	rate(recipes[4], 2, 2)
	rate(recipes[5], 4, 5)

	top, err := repo.GetTopRated(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)

	got := make([]float64, 0, len(top))
	for _, p := range top {
		got = append(got, p.AvgRating)
	}
	assert.Equal(t, []float64{5.0, 4.5, 4.5, 3.0, 2.0}, got)

	// Equal means keep a stable order: the 4.5s come back in id order.
	assert.Less(t, top[1].ID, top[2].ID)

	// With room to spare the unrated recipe appears at the bottom.
	all, err := repo.GetTopRated(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, float64(0), all[5].AvgRating)
	assert.Equal(t, recipes[2].ID, all[5].ID)
}

func TestRateRecipeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(NewRatingRepository(db))
	ctx := context.Background()
	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, "alice", "Stew")

	err := svc.RateRecipe(ctx, domain.RateRecipeRequest{Rating: 6}, "alice", recipe.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	err = svc.RateRecipe(ctx, domain.RateRecipeRequest{Rating: -1}, "alice", recipe.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	err = svc.RateRecipe(ctx, domain.RateRecipeRequest{Rating: 3}, "alice", 9999)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	require.NoError(t, svc.RateRecipe(ctx, domain.RateRecipeRequest{Rating: 3}, "alice", recipe.ID))
}

func TestGetRecipeRatings(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	svc := NewRatingService(repo)
	ctx := context.Background()
	seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, "alice", "Stew")

	require.NoError(t, repo.UpsertRating(ctx, "alice", recipe.ID, 4))
	require.NoError(t, repo.UpsertRating(ctx, "bob", recipe.ID, 2))

	ratings, err := svc.GetRecipeRatings(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	_, err = svc.GetRecipeRatings(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRenderStars(t *testing.T) {
	tests := []struct {
		average float64
		want    string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.5, "★★★☆☆"},
		{4.5, "★★★★★"},
		{5, "★★★★★"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderStars(tt.average), "average %v", tt.average)
	}
}
