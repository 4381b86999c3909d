package services

import (
	"context"
	"errors"
	"fmt"

	"tasks/internal/models"
	"tasks/internal/repositories"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	users     repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(users repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		users:     users,
		publisher: publisher,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}
	return user, nil
}

// CreateUser hashes the password, derives the slug from the username and
// stores the new user. Store errors are reported as *BadRequestError.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &BadRequestError{Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		Slug:           slug.Make(req.Username),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, &BadRequestError{Err: err}
	}

	publish(s.publisher, EventUserCreated, map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

// UpdateUser replaces every updatable field of the user. The slug is left as
// it was computed at creation. Only constraint violations are reported as
// *BadRequestError.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.IsActive = req.IsActive
	user.IsAdmin = req.IsAdmin
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConstraint) {
			return nil, &BadRequestError{Err: err}
		}
		return nil, lookupError(err, "user", id)
	}

	publish(s.publisher, EventUserUpdated, map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// DeleteUser removes the user together with all tasks it owns.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	removed, err := s.users.DeleteWithTasks(ctx, id)
	if err != nil {
		return lookupError(err, "user", id)
	}

	publish(s.publisher, EventUserDeleted, map[string]interface{}{
		"user_id":       id,
		"tasks_removed": removed,
	})
	return nil
}
