package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
	"fixuBack/utils"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

// SignUp registers a user with a freshly minted UUID identity. Reputation
// and progression records are not created here; they materialize lazily on
// first access.
func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.ID = uuid.New().String()
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}
	user.Status = "unverified"

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	var tokens models.Tokens
	tokens.AccessToken, err = s.TokenManager.NewJWT(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}

	// UUID fallback keeps sign-in working if refresh generation fails.
	tokens.RefreshToken = uuid.New().String()
	if refresh, err := s.TokenManager.NewRefreshToken(); err == nil {
		tokens.RefreshToken = refresh
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}

	return tokens, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}
