package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.lookup(s.Repo.GetByID(ctx, userID))
}

// GetPublicUser fetches a profile by username.
func (s *DefaultUserService) GetPublicUser(ctx context.Context, username string) (*models.User, error) {
	return s.lookup(s.Repo.GetByUsername(ctx, username))
}

func (s *DefaultUserService) lookup(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial profile update.
func (s *DefaultUserService) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.IsHost != nil {
		user.IsHost = *update.IsHost
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdateUserPassword replaces the password after checking the current one.
func (s *DefaultUserService) UpdateUserPassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := verifyPasswordStrength(newPassword); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.Repo.Update(ctx, user); err != nil {
		utils.GetLogger().Error("Failed to update password", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
