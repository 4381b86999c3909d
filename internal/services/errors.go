package services

import (
	"errors"
	"fmt"

	"tasks/internal/repositories"
)

// ErrNotFound is wrapped by every error reporting a missing user or task.
var ErrNotFound = errors.New("not found")

// BadRequestError reports a write rejected by the store, such as a
// uniqueness violation. Its message is the store's own message.
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string { return e.Err.Error() }

func (e *BadRequestError) Unwrap() error { return e.Err }

// lookupError converts a repository not-found error into ErrNotFound and
// passes every other error through unchanged.
func lookupError(err error, entity string, id uint) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s with ID %d %w", entity, id, ErrNotFound)
	}
	return err
}
