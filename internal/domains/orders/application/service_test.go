package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/oficinapp/repairshop-api/internal/domains/catalog/application"
	catalogtypes "github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	clientsmemory "github.com/oficinapp/repairshop-api/internal/domains/clients/adapters/memory"
	clientsapp "github.com/oficinapp/repairshop-api/internal/domains/clients/application"
	clienttypes "github.com/oficinapp/repairshop-api/internal/domains/clients/application/types"
	orderslookup "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/lookup"
	ordersmemory "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/memory"
	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
)

type orderFixture struct {
	orders  *Service
	parts   *catalogapp.Service
	clients *clientsapp.Service
}

func newOrderFixture() orderFixture {
	parts := catalogapp.NewService(catalogmemory.NewRepository())
	clients := clientsapp.NewService(clientsmemory.NewRepository())
	orders := NewService(
		ordersmemory.NewRepository(),
		orderslookup.NewClientDirectory(clients),
		orderslookup.NewPartCatalog(parts),
	)
	return orderFixture{orders: orders, parts: parts, clients: clients}
}

func (f orderFixture) createClient(t *testing.T, name string) string {
	t.Helper()
	created, err := f.clients.Create(context.Background(), clienttypes.CreateClientInput{Name: name})
	require.NoError(t, err)
	return created.Entity.ID
}

func (f orderFixture) createPart(t *testing.T, name string) string {
	t.Helper()
	created, err := f.parts.Create(context.Background(), catalogtypes.CreatePartInput{
		Name:      name,
		Category:  "general",
		UnitPrice: 10,
	})
	require.NoError(t, err)
	return created.Entity.ID
}

func TestCreateOrder_DefaultsOpenAndResolvesPart(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")
	partID := f.createPart(t, "Brake pad")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: partID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, created.Order.Status)

	fetched, err := f.orders.GetByID(context.Background(), created.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Client)
	require.Equal(t, "Maria Souza", fetched.Client.Name)
	require.Len(t, fetched.Lines, 1)
	require.Equal(t, 3, fetched.Lines[0].Quantity)
	require.NotNil(t, fetched.Lines[0].Part)
	require.Equal(t, "Brake pad", fetched.Lines[0].Part.Name)
}

func TestCreateOrder_UnknownClientRejected(t *testing.T) {
	f := newOrderFixture()

	_, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{ClientID: "ghost"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrUnknownClient)

	list, err := f.orders.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreateOrder_UnknownPartRejected(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")

	_, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: "ghost", Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrUnknownPart)
}

func TestCreateOrder_InvalidQuantityRejected(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")
	partID := f.createPart(t, "Brake pad")

	_, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: partID, Quantity: 0}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOrder_InvalidStatusRejected(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")

	_, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID: clientID,
		Status:   "cancelled",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrder_DanglingPartResolvesNil(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")
	partID := f.createPart(t, "Brake pad")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: partID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, f.parts.Delete(context.Background(), partID))

	fetched, err := f.orders.GetByID(context.Background(), created.Order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Lines, 1)
	require.Equal(t, partID, fetched.Lines[0].PartID)
	require.Nil(t, fetched.Lines[0].Part)
}

func TestGetOrder_DanglingClientResolvesNil(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{ClientID: clientID})
	require.NoError(t, err)

	require.NoError(t, f.clients.Delete(context.Background(), clientID))

	fetched, err := f.orders.GetByID(context.Background(), created.Order.ID)
	require.NoError(t, err)
	require.Nil(t, fetched.Client)
	require.Equal(t, clientID, fetched.Order.ClientID)
}

func TestUpdateOrder_ReopenCompleted(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID: clientID,
		Status:   string(domain.StatusCompleted),
	})
	require.NoError(t, err)

	status := string(domain.StatusOpen)
	updated, err := f.orders.Update(context.Background(), created.Order.ID, orderstypes.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, updated.Order.Status)
}

func TestUpdateOrder_ReplacesLineItemsWholesale(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")
	firstPart := f.createPart(t, "Brake pad")
	secondPart := f.createPart(t, "Oil filter")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: firstPart, Quantity: 1}},
	})
	require.NoError(t, err)

	items := []orderstypes.LineItemInput{{PartID: secondPart, Quantity: 5}}
	updated, err := f.orders.Update(context.Background(), created.Order.ID, orderstypes.UpdateOrderInput{LineItems: &items})
	require.NoError(t, err)
	require.Len(t, updated.Order.LineItems, 1)
	require.Equal(t, secondPart, updated.Order.LineItems[0].PartID)
	require.Equal(t, 5, updated.Order.LineItems[0].Quantity)
}

func TestUpdateOrder_UnknownID(t *testing.T) {
	f := newOrderFixture()

	status := string(domain.StatusOpen)
	_, err := f.orders.Update(context.Background(), "missing", orderstypes.UpdateOrderInput{Status: &status})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteOrder_SecondDeleteNotFound(t *testing.T) {
	f := newOrderFixture()
	clientID := f.createClient(t, "Maria Souza")

	created, err := f.orders.Create(context.Background(), orderstypes.CreateOrderInput{ClientID: clientID})
	require.NoError(t, err)

	require.NoError(t, f.orders.Delete(context.Background(), created.Order.ID))
	require.ErrorIs(t, f.orders.Delete(context.Background(), created.Order.ID), ports.ErrNotFound)
}
