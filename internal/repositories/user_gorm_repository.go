package repositories

import (
	"context"
	"errors"
	"fmt"

	"tasks/internal/database"
	"tasks/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users ordered by ID.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := database.Session(ctx, r.db).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := database.Session(ctx, r.db).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// Create inserts a new user. The insert is rolled back on any error.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		return classify(r.db, tx.Create(user).Error)
	})
}

// Update writes every mutable column of user, including zero values. It
// returns ErrNotFound when the row no longer exists.
func (r *GORMUserRepository) Update(ctx context.Context, user *models.User) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(user).
			Select("Username", "Email", "IsActive", "IsAdmin").
			Updates(user)
		if res.Error != nil {
			return classify(r.db, res.Error)
		}
		if res.RowsAffected == 0 {
			return missingRow(tx, &models.User{}, "user", user.ID)
		}
		return nil
	})
}

// DeleteWithTasks deletes the tasks owned by the user and then the user itself.
func (r *GORMUserRepository) DeleteWithTasks(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", id).Delete(&models.Task{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete tasks of user %d: %w", id, res.Error)
		}
		removed = res.RowsAffected

		res = tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
