package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/normalization"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
	"github.com/poruwalabs/poruwa-backend/internal/types"
	"github.com/poruwalabs/poruwa-backend/internal/utils"
)

type ProfileUpdate struct {
	Name        *string
	PhoneNumber *string
	Address     *string
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	ListUsers(ctx context.Context) ([]*types.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.User, error) {
	var updated *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, gErr := us.userRepo.GetByID(ctx, tx, userID)
		if gErr != nil {
			return fmt.Errorf("failed to load user: %w", gErr)
		}
		if update.Name != nil {
			user.Name = normalization.ParseInputString(*update.Name)
		}
		if update.PhoneNumber != nil {
			user.PhoneNumber = normalization.ParseInputString(*update.PhoneNumber)
		}
		if update.Address != nil {
			user.Address = *update.Address
		}
		saved, sErr := us.userRepo.Update(ctx, tx, user)
		if sErr != nil {
			return fmt.Errorf("failed to update user: %w", sErr)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("a new password is required")
	}
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, gErr := us.userRepo.GetByID(ctx, tx, userID)
		if gErr != nil {
			return fmt.Errorf("failed to load user: %w", gErr)
		}
		if cErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); cErr != nil {
			return fmt.Errorf("current password is incorrect")
		}
		user.Password = newPassword
		if hErr := utils.HashPassword(user); hErr != nil {
			return hErr
		}
		if _, sErr := us.userRepo.Update(ctx, tx, user); sErr != nil {
			return fmt.Errorf("failed to update password: %w", sErr)
		}
		return nil
	})
}

func (us *userService) ListUsers(ctx context.Context) ([]*types.User, error) {
	users, err := us.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (us *userService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error) {
	if !types.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	var updated *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, gErr := us.userRepo.GetByID(ctx, tx, userID)
		if gErr != nil {
			return fmt.Errorf("failed to load user: %w", gErr)
		}
		user.Role = role
		saved, sErr := us.userRepo.Update(ctx, tx, user)
		if sErr != nil {
			return fmt.Errorf("failed to update role: %w", sErr)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := us.userRepo.Delete(ctx, nil, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
