package domain

import "errors"

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessGetFavourites = "success get favourites"
	MessageSuccessAddFavourite  = "recipe added to favourites"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "invalid username or password"
	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedGetFavourites = "failed to get favourites"
	MessageFailedAddFavourite  = "failed to add favourite"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCredentialsInvalid = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,max=80"`
		Name     string `json:"name" validate:"required,max=120"`
		Password string `json:"password" validate:"required,max=128"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Token    string `json:"token"`
	}

	UserProfileResponse struct {
		Username       string           `json:"username"`
		Name           string           `json:"name"`
		Favourites     []RecipeResponse `json:"favourites"`
		PopularRecipes []PopularRecipe  `json:"popular_recipes"`
	}
)
