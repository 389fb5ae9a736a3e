package entities

type Favourite struct {
	UserID   string `gorm:"type:varchar(80);primaryKey" json:"user_id"`
	RecipeID uint   `gorm:"primaryKey" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID;references:Username" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
