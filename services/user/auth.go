package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 72 * time.Hour

// verifyPasswordStrength rejects short and purely numeric passwords.
func verifyPasswordStrength(pw string) error {
	if len(pw) < 8 {
		return ErrWeakPassword
	}
	for _, r := range pw {
		if !unicode.IsDigit(r) {
			return nil
		}
	}
	return ErrWeakPassword
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return defaultTokenTTL
}

// RegisterUser creates a new user, generates a token and stores its hash.
func (s *DefaultUserService) RegisterUser(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if reg.Username == "" || reg.Email == "" {
		return nil, fmt.Errorf("username and email are required")
	}
	if err := verifyPasswordStrength(reg.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     reg.Username,
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: string(hashedPassword),
		IsHost:       reg.IsHost,
	}
	if err := s.Repo.Create(ctx, &user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, &user)
}

// AuthenticateUser verifies credentials and rotates the user's token.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

// issueToken signs a new JWT, stores its hash and drops the cached hash so
// the previous token stops working.
func (s *DefaultUserService) issueToken(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Username, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.UpdateTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Failed to update user with token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.evictAuthCache(ctx, user.ID)

	return &models.AuthResponse{ID: user.ID, Token: token}, nil
}

// RevokeUserAuthToken clears the token hash and removes the cached copy.
func (s *DefaultUserService) RevokeUserAuthToken(ctx context.Context, userID string) error {
	err := s.Repo.UpdateTokenHash(ctx, userID, "")
	if errors.Is(err, userRepo.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		utils.GetLogger().Error("Failed to revoke user auth token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}
	s.evictAuthCache(ctx, userID)
	return nil
}

func (s *DefaultUserService) evictAuthCache(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Del(ctx, utils.AuthCacheKey(userID)).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
}
