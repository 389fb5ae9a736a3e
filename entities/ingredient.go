package entities

// Ingredient is global and shared across recipes; name is the natural key.
type Ingredient struct {
	Name string `gorm:"type:varchar(100);primaryKey" json:"name"`

	Recipes []RecipeIngredient `gorm:"foreignKey:IngredientName;references:Name" json:"recipes,omitempty"`
}
