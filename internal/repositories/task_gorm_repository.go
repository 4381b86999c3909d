package repositories

import (
	"context"
	"errors"
	"fmt"

	"tasks/internal/database"
	"tasks/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// GetAll retrieves all tasks ordered by ID.
func (r *GORMTaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := database.Session(ctx, r.db).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a single task by its ID.
func (r *GORMTaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := database.Session(ctx, r.db).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task by ID %d: %w", id, err)
	}
	return &task, nil
}

// GetByUserID retrieves every task owned by userID.
func (r *GORMTaskRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := database.Session(ctx, r.db).Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to get tasks of user %d: %w", userID, err)
	}
	return tasks, nil
}

// Create inserts a new task.
func (r *GORMTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", classify(r.db, err))
		}
		return nil
	})
}

// Update writes every mutable column of task, including zero values. It
// returns ErrNotFound when the row no longer exists.
func (r *GORMTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(task).
			Select("Title", "Content", "Priority", "Completed").
			Updates(task)
		if res.Error != nil {
			return fmt.Errorf("failed to update task %d: %w", task.ID, classify(r.db, res.Error))
		}
		if res.RowsAffected == 0 {
			return missingRow(tx, &models.Task{}, "task", task.ID)
		}
		return nil
	})
}

// Delete removes a task by its ID.
func (r *GORMTaskRepository) Delete(ctx context.Context, id uint) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Task{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("task with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
