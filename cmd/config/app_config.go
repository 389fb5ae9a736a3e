package config

import (
	"os"
	"time"

	"recipe-share-backend/internal/api/handlers"
	"recipe-share-backend/internal/api/routes"
	"recipe-share-backend/internal/middleware"
	"recipe-share-backend/internal/utils"
	"recipe-share-backend/internal/utils/storage"
	"recipe-share-backend/pkg/jwt"
	"recipe-share-backend/pkg/rating"
	"recipe-share-backend/pkg/recipe"
	"recipe-share-backend/pkg/snapshot"
	"recipe-share-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, snapshot.SnapshotService, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	snapshotRepository := snapshot.NewSnapshotRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recipeService := recipe.NewRecipeService(recipeRepository, ratingRepository)
	ratingService := rating.NewRatingService(ratingRepository)
	userService := user.NewUserService(userRepository, recipeRepository, ratingRepository, jwtService)
	snapshotService := snapshot.NewSnapshotService(snapshotRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		RatingHandler:   ratingHandler,
		SnapshotHandler: snapshotHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, snapshotService, nil
}
