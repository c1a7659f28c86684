//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	"github.com/oficinapp/repairshop-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("repairshop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// Run migrations
	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	part, err := domain.NewPart(id, "Brake Pad Set", "brakes", 49.90, 12)
	require.NoError(t, err)
	part.Describe("Ceramic front pads")

	// Save
	saved, err := repo.Save(ctx, part)
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "Brake Pad Set", saved.Entity.Name)
	assert.False(t, saved.Metadata.CreatedAt.IsZero())
	assert.False(t, saved.Metadata.UpdatedAt.IsZero())

	// Get by ID
	retrieved, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Brake Pad Set", retrieved.Entity.Name)
	assert.Equal(t, "brakes", retrieved.Entity.Category)
	assert.Equal(t, 49.90, retrieved.Entity.UnitPrice)
	assert.Equal(t, 12, retrieved.Entity.StockQuantity)
	assert.Equal(t, "Ceramic front pads", retrieved.Entity.Description)
}

func TestPostgresRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	part, err := domain.NewPart(id, "Oil Filter", "filters", 8.50, 30)
	require.NoError(t, err)
	_, err = repo.Save(ctx, part)
	require.NoError(t, err)

	// Delete
	err = repo.Delete(ctx, id)
	require.NoError(t, err)

	// Verify not found
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Delete again should error
	err = repo.Delete(ctx, id)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		part, err := domain.NewPart(uuid.NewString(), fmt.Sprintf("Part %d", i), "misc", float64(i), i)
		require.NoError(t, err)
		_, err = repo.Save(ctx, part)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPostgresRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	part, err := domain.NewPart(id, "Spark Plug", "ignition", 4.20, 100)
	require.NoError(t, err)
	saved, err := repo.Save(ctx, part)
	require.NoError(t, err)
	originalCreatedAt := saved.Metadata.CreatedAt

	// Sleep briefly to ensure different timestamps
	time.Sleep(10 * time.Millisecond)

	// Update
	err = part.Rename("Iridium Spark Plug")
	require.NoError(t, err)
	err = part.SetUnitPrice(9.80)
	require.NoError(t, err)
	updated, err := repo.Save(ctx, part)
	require.NoError(t, err)

	assert.Equal(t, "Iridium Spark Plug", updated.Entity.Name)
	assert.Equal(t, 9.80, updated.Entity.UnitPrice)
	assert.Equal(t, originalCreatedAt.Unix(), updated.Metadata.CreatedAt.Unix())
	assert.True(t, updated.Metadata.UpdatedAt.After(originalCreatedAt))
}
