package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned, wrapped, when a lookup or write matches no row.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrConstraint is wrapped by write errors the store rejected because of a
// uniqueness, foreign key or check constraint.
var ErrConstraint = errors.New("constraint violation")

// constraintError keeps the store's own message and matches both
// ErrConstraint and the original driver error.
type constraintError struct {
	err error
}

func (e *constraintError) Error() string { return e.err.Error() }

func (e *constraintError) Unwrap() []error { return []error{ErrConstraint, e.err} }

// classify marks err as a constraint violation when the dialector translates
// it to one of gorm's constraint errors. err must be the raw driver error.
func classify(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	translator, ok := db.Dialector.(gorm.ErrorTranslator)
	if !ok {
		return err
	}
	switch translated := translator.Translate(err); {
	case errors.Is(translated, gorm.ErrDuplicatedKey),
		errors.Is(translated, gorm.ErrForeignKeyViolated),
		errors.Is(translated, gorm.ErrCheckConstraintViolated):
		return &constraintError{err: err}
	}
	return err
}

// missingRow runs after an update that affected no rows. Some drivers report
// zero for a matched row whose values did not change, so the row is counted
// before reporting ErrNotFound.
func missingRow(tx *gorm.DB, model interface{}, entity string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check %s %d: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s with ID %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
