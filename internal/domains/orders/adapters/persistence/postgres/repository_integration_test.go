//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
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

	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
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
	clientID := uuid.NewString()
	partA := uuid.NewString()
	partB := uuid.NewString()
	order, err := domain.NewOrder(id, clientID, []domain.LineItem{
		{PartID: partA, Quantity: 2},
		{PartID: partB, Quantity: 1},
	}, "front brake overhaul", domain.StatusOpen)
	require.NoError(t, err)

	// Save
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.False(t, saved.Metadata.CreatedAt.IsZero())
	assert.False(t, saved.Metadata.UpdatedAt.IsZero())

	// Get by ID: line items must round-trip in order
	retrieved, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, clientID, retrieved.Entity.ClientID)
	assert.Equal(t, domain.StatusOpen, retrieved.Entity.Status)
	assert.Equal(t, "front brake overhaul", retrieved.Entity.Description)
	require.Len(t, retrieved.Entity.LineItems, 2)
	assert.Equal(t, partA, retrieved.Entity.LineItems[0].PartID)
	assert.Equal(t, 2, retrieved.Entity.LineItems[0].Quantity)
	assert.Equal(t, partB, retrieved.Entity.LineItems[1].PartID)
	assert.Equal(t, 1, retrieved.Entity.LineItems[1].Quantity)
}

func TestPostgresRepository_SaveEmptyLineItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	order, err := domain.NewOrder(id, uuid.NewString(), nil, "diagnosis only", domain.StatusOpen)
	require.NoError(t, err)

	_, err = repo.Save(ctx, order)
	require.NoError(t, err)

	retrieved, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, retrieved.Entity.LineItems)
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
	order, err := domain.NewOrder(id, uuid.NewString(), nil, "", domain.StatusOpen)
	require.NoError(t, err)
	_, err = repo.Save(ctx, order)
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

	clientID := uuid.NewString()
	for i := 0; i < 3; i++ {
		order, err := domain.NewOrder(uuid.NewString(), clientID, nil, "", domain.StatusOpen)
		require.NoError(t, err)
		_, err = repo.Save(ctx, order)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
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
	partID := uuid.NewString()
	order, err := domain.NewOrder(id, uuid.NewString(), []domain.LineItem{{PartID: partID, Quantity: 1}}, "", domain.StatusOpen)
	require.NoError(t, err)
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	originalCreatedAt := saved.Metadata.CreatedAt

	// Sleep briefly to ensure different timestamps
	time.Sleep(10 * time.Millisecond)

	// A completed order may be reopened later, so any status overwrite sticks
	err = order.UpdateStatus(domain.StatusCompleted)
	require.NoError(t, err)
	err = order.ReplaceLineItems([]domain.LineItem{{PartID: partID, Quantity: 4}})
	require.NoError(t, err)
	updated, err := repo.Save(ctx, order)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, updated.Entity.Status)
	require.Len(t, updated.Entity.LineItems, 1)
	assert.Equal(t, 4, updated.Entity.LineItems[0].Quantity)
	assert.Equal(t, originalCreatedAt.Unix(), updated.Metadata.CreatedAt.Unix())
	assert.True(t, updated.Metadata.UpdatedAt.After(originalCreatedAt))
}
