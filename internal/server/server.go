package server

import (
	"errors"
	"log"
	"time"

	"tasks/internal/database"
	"tasks/internal/handlers"
	"tasks/internal/middleware"
	"tasks/internal/repositories"
	"tasks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options tunes NewApp.
type Options struct {
	// Publisher receives domain events. Leave nil to disable publishing.
	Publisher services.EventPublisher
	// RequestTimeout bounds every request, including its database work.
	RequestTimeout time.Duration
	// DisableAccessLog turns off the per-request logger middleware.
	DisableAccessLog bool
}

// NewApp wires repositories, services and handlers over db and returns a
// ready to listen fiber app.
func NewApp(db *gorm.DB, opts Options) *fiber.App {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	userRepo := repositories.NewGORMUserRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)

	userService := services.NewUserService(userRepo, opts.Publisher)
	taskService := services.NewTaskService(taskRepo, userRepo, opts.Publisher)

	validate := validator.New()
	userHandler := handlers.NewUserHandler(userService, validate)
	taskHandler := handlers.NewTaskHandler(taskService, validate)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if !opts.DisableAccessLog {
		app.Use(logger.New())
	}
	app.Use(middleware.RequestContext(opts.RequestTimeout))

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if err := database.Ping(c.UserContext(), db); err != nil {
			log.Printf("Health check database ping failed: %v", err)
			dbStatus = "down"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"database": dbStatus,
			"time":     time.Now().Format(time.RFC3339),
		})
	})

	taskHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)

	return app
}

// errorHandler renders errors that handlers did not map themselves.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return handlers.WriteError(c, fiberErr.Code, fiberErr.Message)
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return handlers.WriteError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
