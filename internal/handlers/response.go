package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"tasks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TransactionResponse is the body returned by every write endpoint.
type TransactionResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
	ID          uint   `json:"id,omitempty"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	StatusCode int               `json:"status_code"`
	Detail     string            `json:"detail"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func respondTransaction(c *fiber.Ctx, status int, id uint) error {
	return c.Status(status).JSON(TransactionResponse{
		StatusCode:  status,
		Transaction: "Successful",
		ID:          id,
	})
}

// WriteError renders an error body with the given status.
func WriteError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorResponse{StatusCode: status, Detail: detail})
}

// respondError maps known errors to 4xx responses. Unknown errors are
// returned so the app's error handler turns them into a 500.
func respondError(c *fiber.Ctx, err error) error {
	var (
		badRequest *services.BadRequestError
		invalid    *ValidationError
		fiberErr   *fiber.Error
	)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return WriteError(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			StatusCode: fiber.StatusBadRequest,
			Detail:     "Validation failed",
			Errors:     invalid.Fields,
		})
	case errors.As(err, &badRequest):
		return WriteError(c, fiber.StatusBadRequest, badRequest.Error())
	case errors.As(err, &fiberErr):
		return WriteError(c, fiberErr.Code, fiberErr.Message)
	default:
		return err
	}
}

// parseBody decodes the JSON body into out and validates it.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}

// parseID parses a positive integer identifier named name.
func parseID(raw, name string) (uint, error) {
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return uint(id), nil
}
