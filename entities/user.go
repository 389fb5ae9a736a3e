package entities

type User struct {
	Username string `gorm:"type:varchar(80);primaryKey" json:"username"`
	Name     string `gorm:"type:varchar(120);not null" json:"name"`
	Password string `gorm:"type:varchar(128);not null" json:"-"`

	Recipes    []Recipe    `gorm:"foreignKey:UserID;references:Username" json:"recipes,omitempty"`
	Favourites []Favourite `gorm:"foreignKey:UserID;references:Username" json:"favourites,omitempty"`
	Ratings    []Rating    `gorm:"foreignKey:UserID;references:Username" json:"ratings,omitempty"`
}

// CheckPassword compares a submitted credential against the stored one.
// Stored passwords are plain equality-checked for snapshot compatibility
// unless hashing is enabled at registration time (see pkg/user).
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
