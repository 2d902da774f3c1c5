package service

import (
	"context"
	"errors"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate carries the mutable profile fields; nil leaves a field
// unchanged.
type ProfileUpdate struct {
	Name        *string
	Bio         *string
	Phone       *string
	NotifyEmail *bool
}

// UserService covers the profile endpoints and the admin-only removal.
type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile returns the caller's own account, without the hash.
func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies partial-update semantics to the profile fields.
func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.NotifyEmail != nil {
		user.NotifyEmail = *update.NotifyEmail
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes an account. Only reachable through the admin
// surface; the CRUD API never deletes users.
func (s *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
