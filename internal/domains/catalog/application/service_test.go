package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/memory"
	catalogtypes "github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
)

func TestCreatePart_RoundTrip(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:          "Brake pad",
		Category:      "brakes",
		UnitPrice:     49.90,
		StockQuantity: 12,
		Description:   "front axle",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Entity.ID)
	require.False(t, created.Metadata.CreatedAt.IsZero())

	fetched, err := svc.GetByID(context.Background(), created.Entity.ID)
	require.NoError(t, err)
	require.Equal(t, "Brake pad", fetched.Entity.Name)
	require.Equal(t, "brakes", fetched.Entity.Category)
	require.Equal(t, 49.90, fetched.Entity.UnitPrice)
	require.Equal(t, 12, fetched.Entity.StockQuantity)
	require.Equal(t, "front axle", fetched.Entity.Description)
}

func TestCreatePart_NegativePriceRejected(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:      "Brake pad",
		Category:  "brakes",
		UnitPrice: -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreatePart_NegativeStockRejected(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:          "Brake pad",
		Category:      "brakes",
		StockQuantity: -3,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreatePart_MissingNameRejected(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{Category: "brakes"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePart_PartialFields(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:          "Oil filter",
		Category:      "filters",
		UnitPrice:     9.50,
		StockQuantity: 40,
	})
	require.NoError(t, err)

	price := 11.0
	updated, err := svc.Update(context.Background(), created.Entity.ID, catalogtypes.UpdatePartInput{
		UnitPrice: &price,
	})
	require.NoError(t, err)
	require.Equal(t, 11.0, updated.Entity.UnitPrice)
	require.Equal(t, "Oil filter", updated.Entity.Name)
	require.Equal(t, 40, updated.Entity.StockQuantity)
	require.Equal(t, created.Metadata.CreatedAt, updated.Metadata.CreatedAt)
	require.GreaterOrEqual(t, updated.Metadata.UpdatedAt, created.Metadata.UpdatedAt)
}

func TestUpdatePart_InvalidFieldRejected(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:     "Oil filter",
		Category: "filters",
	})
	require.NoError(t, err)

	price := -0.5
	_, err = svc.Update(context.Background(), created.Entity.ID, catalogtypes.UpdatePartInput{UnitPrice: &price})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePart_UnknownID(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	name := "anything"
	_, err := svc.Update(context.Background(), "missing", catalogtypes.UpdatePartInput{Name: &name})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeletePart_SecondDeleteNotFound(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:     "Spark plug",
		Category: "ignition",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.Entity.ID))
	err = svc.Delete(context.Background(), created.Entity.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
