package database_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospors/gospors/internal/database"
	"github.com/gospors/gospors/internal/domain"
)

// setupTestDB connects to TEST_DATABASE_URL and migrates; skipped without it.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx, slog.New(slog.NewTextHandler(io.Discard, nil))))
	// Twice: migrations are idempotent.
	require.NoError(t, db.Migrate(ctx, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return db
}

func TestPostgresUsers_UpsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	users := database.NewPostgresUsers(db)
	ctx := context.Background()

	subject := uuid.NewString()
	created, err := users.Upsert(ctx, domain.Identity{
		Provider: "github", Subject: subject, Email: "maya@example.com", FullName: "Maya",
	})
	require.NoError(t, err)

	updated, err := users.Upsert(ctx, domain.Identity{
		Provider: "github", Subject: subject, Email: "maya@example.com", FullName: "Maya Lopez",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya Lopez", got.FullName)

	recent, err := users.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, recent)

	require.NoError(t, users.Health(ctx))
}

func TestPostgresUsers_GetUnknown(t *testing.T) {
	db := setupTestDB(t)

	_, err := database.NewPostgresUsers(db).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
