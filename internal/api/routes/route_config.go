package routes

import (
	"recipe-share-backend/internal/api/handlers"
	"recipe-share-backend/internal/middleware"
	"recipe-share-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	RatingHandler   handlers.RatingHandler
	SnapshotHandler handlers.SnapshotHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Suggestions()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/me/favourites", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetFavourites)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/popular", c.RatingHandler.GetPopularRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/ratings", c.RatingHandler.GetRecipeRatings)

		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddRecipe)
		recipes.Post("/:id/rate", c.Middleware.AuthMiddleware(c.JWTService), c.RatingHandler.RateRecipe)
		recipes.Post("/:id/favourite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddFavourite)
	}

	c.App.Get("/api/v1/ingredients", c.RecipeHandler.GetIngredients)
}

func (c *Config) Suggestions() {
	suggestions := c.App.Group("/api/v1/suggestions")
	{
		suggestions.Get("/ingredients", c.RecipeHandler.SuggestIngredients)
		suggestions.Get("/categories", c.RecipeHandler.SuggestCategories)
		suggestions.Get("/cuisines", c.RecipeHandler.SuggestCuisines)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService))
	{
		admin.Get("/export", c.SnapshotHandler.ExportDatabase)
		admin.Post("/import", c.SnapshotHandler.ImportDatabase)
		admin.Post("/wipe", c.SnapshotHandler.WipeDatabase)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
