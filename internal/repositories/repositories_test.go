package repositories_test

import (
	"context"
	"strings"
	"testing"

	"tasks/internal/config"
	"tasks/internal/database"
	"tasks/internal/models"
	"tasks/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens a private in-memory SQLite database. A single connection
// keeps every statement on the same in-memory instance.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(context.Background(), config.Database{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedUser(t *testing.T, repo repositories.UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hashed",
		IsActive:       true,
		Slug:           username,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGORMUserRepository_CRUD(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, repo, "alice")
	assert.NotZero(t, user.ID)

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Username)
	assert.True(t, fetched.IsActive)

	fetched.Username = "alice2"
	fetched.IsActive = false
	fetched.IsAdmin = true
	require.NoError(t, repo.Update(ctx, fetched))

	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, "alice", updated.Slug)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGORMUserRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	user, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_CreateDuplicateUsername(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))
	seedUser(t, repo, "alice")

	dup := &models.User{Username: "alice", Email: "other@example.com", HashedPassword: "h", Slug: "alice"}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, repositories.ErrConstraint)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGORMUserRepository_UpdateDuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))
	seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")

	bob.Email = "alice@example.com"
	err := repo.Update(context.Background(), bob)
	assert.ErrorIs(t, err, repositories.ErrConstraint)
	assert.Contains(t, err.Error(), "users.email")

	stored, err := repo.GetByID(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", stored.Email)
}

func TestGORMUserRepository_UpdateMissingRow(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	gone := &models.User{ID: 42, Username: "ghost", Email: "ghost@example.com"}
	err := repo.Update(context.Background(), gone)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.NotErrorIs(t, err, repositories.ErrConstraint)
}

func TestGORMUserRepository_DeleteWithTasks(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	tasks := repositories.NewGORMTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner")
	other := seedUser(t, users, "other")
	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, tasks.Create(ctx, &models.Task{Title: title, Slug: title, UserID: owner.ID}))
	}
	require.NoError(t, tasks.Create(ctx, &models.Task{Title: "keep", Slug: "keep", UserID: other.ID}))

	removed, err := users.DeleteWithTasks(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	_, err = users.GetByID(ctx, owner.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	owned, err := tasks.GetByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)

	remaining, err := tasks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep", remaining[0].Title)
}

func TestGORMUserRepository_DeleteWithTasksMissingUserRollsBack(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	tasks := repositories.NewGORMTaskRepository(db)
	ctx := context.Background()

	// An orphaned task referencing a user id that has no row.
	require.NoError(t, tasks.Create(ctx, &models.Task{Title: "orphan", Slug: "orphan", UserID: 99}))

	removed, err := users.DeleteWithTasks(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Zero(t, removed)

	orphans, err := tasks.GetByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}

func TestGORMTaskRepository_CRUD(t *testing.T) {
	db := setupDB(t)
	owner := seedUser(t, repositories.NewGORMUserRepository(db), "owner")
	repo := repositories.NewGORMTaskRepository(db)
	ctx := context.Background()

	task := &models.Task{Title: "Buy milk", Content: "2%", Priority: 1, Slug: "buy-milk", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, task))
	assert.NotZero(t, task.ID)

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy-milk", fetched.Slug)
	assert.False(t, fetched.Completed)

	fetched.Completed = true
	fetched.Priority = 0
	fetched.Content = ""
	require.NoError(t, repo.Update(ctx, fetched))

	updated, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, 0, updated.Priority)
	assert.Empty(t, updated.Content)

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err = repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Updating a deleted task writes nothing and reports the missing row.
	err = repo.Update(ctx, fetched)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMRepositories_LongTransliteratedSlug(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	long := strings.Repeat("zhuang-", 100)
	user := &models.User{Username: "wide", Email: "wide@example.com", HashedPassword: "h", Slug: long}
	require.NoError(t, users.Create(ctx, user))

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, long, stored.Slug)

	// Slug columns are unbounded on every driver.
	for _, model := range []interface{}{&models.User{}, &models.Task{}} {
		columns, err := db.Migrator().ColumnTypes(model)
		require.NoError(t, err)
		var found bool
		for _, column := range columns {
			if column.Name() == "slug" {
				found = true
				assert.True(t, strings.EqualFold("text", column.DatabaseTypeName()), column.DatabaseTypeName())
			}
		}
		assert.True(t, found)
	}
}
