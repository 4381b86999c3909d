package handlers

import (
	"log"

	"tasks/internal/models"
	"tasks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the user routes under /user.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/create", h.HandleCreateUser)
	userRoutes.Get("/:user_id", h.HandleGetUserByID)
	userRoutes.Put("/:user_id", h.HandleUpdateUser)
	userRoutes.Delete("/:user_id", h.HandleDeleteUser)
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return err
	}
	return c.JSON(users)
}

// HandleGetUserByID returns one user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"), "user_id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.service.GetUserByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user from a CreateUserRequest body.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.service.CreateUser(c.UserContext(), req)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Username, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusCreated, user.ID)
}

// HandleUpdateUser replaces the fields of an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"), "user_id")
	if err != nil {
		return respondError(c, err)
	}
	var req models.UpdateUserRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.service.UpdateUser(c.UserContext(), id, req); err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusOK, 0)
}

// HandleDeleteUser deletes a user and every task it owns.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"), "user_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		return respondError(c, err)
	}
	return respondTransaction(c, fiber.StatusOK, 0)
}
