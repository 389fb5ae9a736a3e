package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recipe-share-backend/domain"
	"recipe-share-backend/entities"
	"recipe-share-backend/internal/utils"
	"recipe-share-backend/internal/utils/mailing"
	"recipe-share-backend/pkg/jwt"
	"recipe-share-backend/pkg/rating"
	"recipe-share-backend/pkg/recipe"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, username string) (domain.UserProfileResponse, error)
	}

	userService struct {
		userRepository   UserRepository
		recipeRepository recipe.RecipeRepository
		ratingRepository rating.RatingRepository
		jwtService       jwt.JWTService
	}
)

func NewUserService(
	userRepository UserRepository,
	recipeRepository recipe.RecipeRepository,
	ratingRepository rating.RatingRepository,
	jwtService jwt.JWTService,
) UserService {
	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
		jwtService:       jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	_, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return domain.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := req.Password
	if utils.GetConfig("PASSWORD_HASHING") == "true" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		password = string(hashed)
	}

	user := entities.User{
		Username: req.Username,
		Name:     req.Name,
		Password: password,
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return err
	}

	if mailing.Enabled() {
		go func() {
			body := fmt.Sprintf("<p>New user <b>%s</b> (%s) just registered.</p>", user.Username, user.Name)
			if err := mailing.SendMail(utils.GetConfig("SMTP_AUTH_EMAIL"), "New registration", body); err != nil {
				log.Printf("failed to send registration mail: %v", err)
			}
		}()
	}

	return nil
}

// Login verifies the submitted credential against the stored one. With
// hashing disabled the check is plain string equality, which keeps old
// snapshots loadable but stores passwords in the clear.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if utils.GetConfig("PASSWORD_HASHING") == "true" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
	} else if !user.CheckPassword(req.Password) {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.Username)
	return domain.LoginResponse{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

func (s *userService) Me(ctx context.Context, username string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	favourites, err := s.recipeRepository.GetFavouriteRecipes(ctx, user.Username)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	popular, err := s.ratingRepository.GetTopRated(ctx, 5)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	favs := make([]domain.RecipeResponse, 0, len(favourites))
	for _, r := range favourites {
		favs = append(favs, domain.RecipeResponse{
			ID:           r.ID,
			Name:         r.Name,
			DishCategory: r.DishCategory,
			Cuisine:      r.Cuisine,
			CookingTime:  r.CookingTime,
			UserID:       r.UserID,
		})
	}

	return domain.UserProfileResponse{
		Username:       user.Username,
		Name:           user.Name,
		Favourites:     favs,
		PopularRecipes: popular,
	}, nil
}
