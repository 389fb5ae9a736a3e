package entities

type Recipe struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	DishCategory string `gorm:"type:varchar(50);not null" json:"dish_category"`
	Cuisine      string `gorm:"type:varchar(50);not null" json:"cuisine"`
	CookingTime  int    `gorm:"not null" json:"cooking_time"` // total minutes
	RecipeSteps  string `gorm:"type:text;not null" json:"recipe_steps"`
	UserID       string `gorm:"type:varchar(80);not null" json:"user_id"`

	User        *User              `gorm:"foreignKey:UserID;references:Username" json:"user,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Favourites  []Favourite        `gorm:"foreignKey:RecipeID" json:"favourites,omitempty"`
	Ratings     []Rating           `gorm:"foreignKey:RecipeID" json:"ratings,omitempty"`
}

// RecipeIngredient carries the per-pair amount, e.g. "2 cups".
type RecipeIngredient struct {
	RecipeID       uint   `gorm:"primaryKey" json:"recipe_id"`
	IngredientName string `gorm:"type:varchar(100);primaryKey" json:"ingredient_name"`
	Amount         string `gorm:"type:varchar(50);not null" json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientName;references:Name" json:"ingredient,omitempty"`
}
