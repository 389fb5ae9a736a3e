package snapshot

import (
	"context"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"

	"gorm.io/gorm"
)

type (
	SnapshotRepository interface {
		DumpAll(ctx context.Context) (*domain.Snapshot, error)
		RestoreAll(ctx context.Context, snap *domain.Snapshot) error
		Wipe(ctx context.Context) error
	}

	snapshotRepository struct {
		db *gorm.DB
	}
)

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// DumpAll reads all six tables inside one transaction, so the snapshot is a
// consistent picture of committed state even while other writes are running.
func (r *snapshotRepository) DumpAll(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Users:             []domain.UserRow{},
		Recipes:           []domain.RecipeRow{},
		Ingredients:       []domain.IngredientRow{},
		RecipeIngredients: []domain.RecipeIngredientRow{},
		Favourites:        []domain.FavouriteRow{},
		Ratings:           []domain.RatingRow{},
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []entities.User
		if err := tx.Order("username").Find(&users).Error; err != nil {
			return err
		}
		for _, u := range users {
			snap.Users = append(snap.Users, domain.UserRow{
				Username: u.Username,
				Name:     u.Name,
				Password: u.Password,
			})
		}

		var recipes []entities.Recipe
		if err := tx.Order("id").Find(&recipes).Error; err != nil {
			return err
		}
		for _, rec := range recipes {
			snap.Recipes = append(snap.Recipes, domain.RecipeRow{
				ID:           rec.ID,
				Name:         rec.Name,
				DishCategory: rec.DishCategory,
				Cuisine:      rec.Cuisine,
				CookingTime:  rec.CookingTime,
				RecipeSteps:  rec.RecipeSteps,
				UserID:       rec.UserID,
			})
		}

		var ingredients []entities.Ingredient
		if err := tx.Order("name").Find(&ingredients).Error; err != nil {
			return err
		}
		for _, ing := range ingredients {
			snap.Ingredients = append(snap.Ingredients, domain.IngredientRow{Name: ing.Name})
		}

		var recipeIngredients []entities.RecipeIngredient
		if err := tx.Order("recipe_id, ingredient_name").Find(&recipeIngredients).Error; err != nil {
			return err
		}
		for _, ri := range recipeIngredients {
			snap.RecipeIngredients = append(snap.RecipeIngredients, domain.RecipeIngredientRow{
				RecipeID:       ri.RecipeID,
				IngredientName: ri.IngredientName,
				Amount:         ri.Amount,
			})
		}

		var favourites []entities.Favourite
		if err := tx.Order("user_id, recipe_id").Find(&favourites).Error; err != nil {
			return err
		}
		for _, f := range favourites {
			snap.Favourites = append(snap.Favourites, domain.FavouriteRow{
				UserID:   f.UserID,
				RecipeID: f.RecipeID,
			})
		}

		var ratings []entities.Rating
		if err := tx.Order("user_id, recipe_id").Find(&ratings).Error; err != nil {
			return err
		}
		for _, rt := range ratings {
			snap.Ratings = append(snap.Ratings, domain.RatingRow{
				UserID:   rt.UserID,
				RecipeID: rt.RecipeID,
				Rating:   rt.Rating,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// RestoreAll wipes the store and reloads every table in foreign-key order:
// users and ingredients first, then recipes, then the join tables. The
// inserts run in one transaction; any constraint violation rolls back to the
// empty schema left by the wipe.
func (r *snapshotRepository) RestoreAll(ctx context.Context, snap *domain.Snapshot) error {
	if err := r.Wipe(ctx); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range snap.Users {
			user := entities.User{Username: row.Username, Name: row.Name, Password: row.Password}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		for _, row := range snap.Ingredients {
			ing := entities.Ingredient{Name: row.Name}
			if err := tx.Create(&ing).Error; err != nil {
				return err
			}
		}

		for _, row := range snap.Recipes {
			rec := entities.Recipe{
				ID:           row.ID,
				Name:         row.Name,
				DishCategory: row.DishCategory,
				Cuisine:      row.Cuisine,
				CookingTime:  row.CookingTime,
				RecipeSteps:  row.RecipeSteps,
				UserID:       row.UserID,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}

		for _, row := range snap.RecipeIngredients {
			ri := entities.RecipeIngredient{
				RecipeID:       row.RecipeID,
				IngredientName: row.IngredientName,
				Amount:         row.Amount,
			}
			if err := tx.Create(&ri).Error; err != nil {
				return err
			}
		}

		for _, row := range snap.Favourites {
			fav := entities.Favourite{UserID: row.UserID, RecipeID: row.RecipeID}
			if err := tx.Create(&fav).Error; err != nil {
				return err
			}
		}

		for _, row := range snap.Ratings {
			rt := entities.Rating{UserID: row.UserID, RecipeID: row.RecipeID, Rating: row.Rating}
			if err := tx.Create(&rt).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Wipe drops every table and recreates the empty schema.
func (r *snapshotRepository) Wipe(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	// Dependents first so foreign keys do not block the drops.
	tables := []interface{}{
		&entities.Rating{},
		&entities.Favourite{},
		&entities.RecipeIngredient{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.User{},
	}
	for _, table := range tables {
		if db.Migrator().HasTable(table) {
			if err := db.Migrator().DropTable(table); err != nil {
				return err
			}
		}
	}

	return db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favourite{},
		&entities.Rating{},
	)
}
