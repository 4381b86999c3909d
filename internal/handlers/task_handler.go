package handlers

import (
	"log"

	"tasks/internal/models"
	"tasks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the task routes under /tasks. Static segments are
// registered before the :task_id catch-all.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskRoutes := router.Group("/tasks")
	taskRoutes.Get("/", h.HandleGetTasks)
	taskRoutes.Post("/create", h.HandleCreateTask)
	taskRoutes.Put("/update", h.HandleUpdateTask)
	taskRoutes.Delete("/delete", h.HandleDeleteTask)
	taskRoutes.Get("/:user_id/tasks", h.HandleGetTasksByUser)
	taskRoutes.Get("/:task_id", h.HandleGetTaskByID)
}

// HandleGetTasks lists all tasks.
func (h *TaskHandler) HandleGetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetAllTasks(c.UserContext())
	if err != nil {
		log.Printf("Error getting all tasks: %v", err)
		return err
	}
	return c.JSON(tasks)
}

// HandleGetTaskByID returns one task.
func (h *TaskHandler) HandleGetTaskByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("task_id"), "task_id")
	if err != nil {
		return respondError(c, err)
	}
	task, err := h.service.GetTaskByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// HandleCreateTask creates a task for the user given by the user_id query parameter.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	userID, err := parseID(c.Query("user_id"), "user_id")
	if err != nil {
		return respondError(c, err)
	}
	var req models.CreateTaskRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	task, err := h.service.CreateTask(c.UserContext(), userID, req)
	if err != nil {
		log.Printf("Error creating task for user %d: %v", userID, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusCreated, task.ID)
}

// HandleUpdateTask replaces the fields of the task given by the task_id query parameter.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	id, err := parseID(c.Query("task_id"), "task_id")
	if err != nil {
		return respondError(c, err)
	}
	var req models.UpdateTaskRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.service.UpdateTask(c.UserContext(), id, req); err != nil {
		log.Printf("Error updating task %d: %v", id, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusOK, 0)
}

// HandleDeleteTask deletes the task given by the task_id query parameter.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	id, err := parseID(c.Query("task_id"), "task_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteTask(c.UserContext(), id); err != nil {
		log.Printf("Error deleting task %d: %v", id, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusOK, 0)
}

// HandleGetTasksByUser lists the tasks owned by a user.
func (h *TaskHandler) HandleGetTasksByUser(c *fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"), "user_id")
	if err != nil {
		return respondError(c, err)
	}
	tasks, err := h.service.GetTasksByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}
