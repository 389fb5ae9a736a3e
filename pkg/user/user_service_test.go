package user

import (
	"context"
	"path/filepath"
	"testing"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"
	"recipe-share-backend/pkg/jwt"
	"recipe-share-backend/pkg/rating"
	"recipe-share-backend/pkg/recipe"

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

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserService(
		NewUserRepository(db),
		recipe.NewRecipeRepository(db),
		rating.NewRatingRepository(db),
		jwt.NewJWTService(),
	)
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "secret",
	}))

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "Alice", res.Name)
	assert.NotEmpty(t, res.Token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "secret",
	}))

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Name:     "Another Alice",
		Password: "other",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "secret",
	}))

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeIncludesFavouritesAndPopular(t *testing.T) {
	service, gdb := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, domain.RegisterRequest{
		Username: "alice", Name: "Alice", Password: "secret",
	}))
	require.NoError(t, service.Register(ctx, domain.RegisterRequest{
		Username: "bob", Name: "Bob", Password: "secret",
	}))

	recipeRepo := recipe.NewRecipeRepository(gdb)
	ratingRepo := rating.NewRatingRepository(gdb)

	soup := entities.Recipe{Name: "Soup", DishCategory: "Starter", Cuisine: "Thai", CookingTime: 20, RecipeSteps: "Step 1: simmer", UserID: "bob"}
	require.NoError(t, recipeRepo.CreateRecipeWithIngredients(ctx, &soup, nil))
	stew := entities.Recipe{Name: "Stew", DishCategory: "Main", Cuisine: "Irish", CookingTime: 90, RecipeSteps: "Step 1: stew", UserID: "bob"}
	require.NoError(t, recipeRepo.CreateRecipeWithIngredients(ctx, &stew, nil))

	require.NoError(t, recipeRepo.AddFavourite(ctx, "alice", soup.ID))
	require.NoError(t, ratingRepo.UpsertRating(ctx, "alice", stew.ID, 5))

	profile, err := service.Me(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	require.Len(t, profile.Favourites, 1)
	assert.Equal(t, "Soup", profile.Favourites[0].Name)
	require.Len(t, profile.PopularRecipes, 2)
	assert.Equal(t, stew.ID, profile.PopularRecipes[0].ID)

	_, err = service.Me(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
