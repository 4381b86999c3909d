package database

import (
	"context"

	"gorm.io/gorm"
)

// Session returns a new gorm session bound to ctx. Statements issued through
// it are cancelled when the request that owns ctx goes away.
func Session(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Session(&gorm.Session{})
}

// WithTransaction runs fn inside a single transaction. The transaction is
// committed when fn returns nil and rolled back when fn returns an error or
// panics. The connection is released back to the pool in every case.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return Session(ctx, db).Transaction(fn)
}
