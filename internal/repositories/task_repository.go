package repositories

import (
	"context"

	"tasks/internal/models"
)

// TaskRepository defines the interface for task data access.
type TaskRepository interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
}
