package services

import (
	"context"

	"tasks/internal/models"
	"tasks/internal/repositories"

	"github.com/gosimple/slug"
)

// TaskService handles business logic related to tasks.
type TaskService struct {
	tasks     repositories.TaskRepository
	users     repositories.UserRepository
	publisher EventPublisher
}

// NewTaskService creates a new TaskService. publisher may be nil.
func NewTaskService(tasks repositories.TaskRepository, users repositories.UserRepository, publisher EventPublisher) *TaskService {
	return &TaskService{
		tasks:     tasks,
		users:     users,
		publisher: publisher,
	}
}

// GetAllTasks retrieves all tasks.
func (s *TaskService) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return s.tasks.GetAll(ctx)
}

// GetTaskByID retrieves a single task by its ID.
func (s *TaskService) GetTaskByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "task", id)
	}
	return task, nil
}

// GetTasksByUser retrieves the tasks owned by userID. A user without tasks
// yields an empty slice; an unknown user yields ErrNotFound.
func (s *TaskService) GetTasksByUser(ctx context.Context, userID uint) ([]models.Task, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, lookupError(err, "user", userID)
	}
	return s.tasks.GetByUserID(ctx, userID)
}

// CreateTask stores a new, not yet completed task owned by userID.
func (s *TaskService) CreateTask(ctx context.Context, userID uint, req models.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, lookupError(err, "user", userID)
	}

	task := &models.Task{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  req.Priority,
		Completed: false,
		Slug:      slug.Make(req.Title),
		UserID:    userID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	publish(s.publisher, EventTaskCreated, map[string]interface{}{
		"task_id": task.ID,
		"user_id": task.UserID,
	})
	return task, nil
}

// UpdateTask replaces title, content, priority and completed of the task.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "task", id)
	}

	task.Title = req.Title
	task.Content = req.Content
	task.Priority = req.Priority
	task.Completed = req.Completed
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, lookupError(err, "task", id)
	}

	publish(s.publisher, EventTaskUpdated, map[string]interface{}{"task_id": task.ID})
	return task, nil
}

// DeleteTask deletes a task by its ID.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return lookupError(err, "task", id)
	}

	publish(s.publisher, EventTaskDeleted, map[string]interface{}{"task_id": id})
	return nil
}
