package entities

// Rating holds one row per (user, recipe); re-rating overwrites the value.
type Rating struct {
	UserID   string `gorm:"type:varchar(80);primaryKey" json:"user_id"`
	RecipeID uint   `gorm:"primaryKey" json:"recipe_id"`
	Rating   int    `gorm:"not null" json:"rating"` // 0 to 5 inclusive

	User   *User   `gorm:"foreignKey:UserID;references:Username" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
