package repositories

import (
	"context"

	"tasks/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// DeleteWithTasks removes the user and every task it owns in one
	// transaction and returns the number of tasks removed.
	DeleteWithTasks(ctx context.Context, id uint) (int64, error)
}
