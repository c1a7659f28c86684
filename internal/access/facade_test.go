package access

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
	identitydomain "github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	orderslookup "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/lookup"
	ordersmemory "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/memory"
	ordersworkflows "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/oficinapp/repairshop-api/internal/domains/orders/application"
	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
)

var (
	admin  = identitydomain.Identity{ID: "admin-1", Email: "admin@example.com", Role: identitydomain.RoleAdmin}
	nobody = identitydomain.Identity{}
)

func clientIdentity(id string) identitydomain.Identity {
	return identitydomain.Identity{ID: id, Email: id + "@example.com", Role: identitydomain.RoleClient}
}

func newFacadeFixture() *Facade {
	parts := catalogapp.NewService(catalogmemory.NewRepository())
	clients := clientsapp.NewService(clientsmemory.NewRepository())
	orders := ordersapp.NewService(
		ordersmemory.NewRepository(),
		orderslookup.NewClientDirectory(clients),
		orderslookup.NewPartCatalog(parts),
	)
	return New(parts, clients, orders, ordersworkflows.NewInlineOrderWorkflows(orders))
}

func (f *Facade) mustCreateClient(t *testing.T, name string) string {
	t.Helper()
	created, err := f.CreateClient(context.Background(), admin, clienttypes.CreateClientInput{Name: name})
	require.NoError(t, err)
	return created.Entity.ID
}

func (f *Facade) mustCreateOrder(t *testing.T, clientID string) string {
	t.Helper()
	created, err := f.CreateOrder(context.Background(), admin, orderstypes.CreateOrderInput{ClientID: clientID})
	require.NoError(t, err)
	return created.Order.ID
}

func TestFacade_UnauthenticatedBeforeRoleChecks(t *testing.T) {
	f := newFacadeFixture()

	_, err := f.ListParts(context.Background(), nobody)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.CreatePart(context.Background(), nobody, catalogtypes.CreatePartInput{Name: "x", Category: "y"})
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.ListOrders(context.Background(), identitydomain.Identity{ID: "u1", Role: "superuser"})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFacade_CatalogReadsOpenToClients(t *testing.T) {
	f := newFacadeFixture()
	created, err := f.CreatePart(context.Background(), admin, catalogtypes.CreatePartInput{Name: "Brake pad", Category: "brakes"})
	require.NoError(t, err)

	caller := clientIdentity("c1")
	list, err := f.ListParts(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, list, 1)

	fetched, err := f.GetPart(context.Background(), caller, created.Entity.ID)
	require.NoError(t, err)
	require.Equal(t, "Brake pad", fetched.Entity.Name)
}

func TestFacade_ClientRoleDeniedWrites(t *testing.T) {
	f := newFacadeFixture()
	clientID := f.mustCreateClient(t, "Maria Souza")
	caller := clientIdentity(clientID)

	_, err := f.CreatePart(context.Background(), caller, catalogtypes.CreatePartInput{Name: "x", Category: "y"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.CreateOrder(context.Background(), caller, orderstypes.CreateOrderInput{ClientID: clientID})
	require.ErrorIs(t, err, ErrForbidden)

	err = f.DeleteClient(context.Background(), caller, clientID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.ListClients(context.Background(), caller)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestFacade_AdminAllowedEverywhere(t *testing.T) {
	f := newFacadeFixture()
	clientID := f.mustCreateClient(t, "Maria Souza")

	part, err := f.CreatePart(context.Background(), admin, catalogtypes.CreatePartInput{Name: "Brake pad", Category: "brakes"})
	require.NoError(t, err)

	order, err := f.CreateOrder(context.Background(), admin, orderstypes.CreateOrderInput{
		ClientID:  clientID,
		LineItems: []orderstypes.LineItemInput{{PartID: part.Entity.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.Order.ID)

	require.NoError(t, f.DeleteOrder(context.Background(), admin, order.Order.ID))
	require.NoError(t, f.DeletePart(context.Background(), admin, part.Entity.ID))
	require.NoError(t, f.DeleteClient(context.Background(), admin, clientID))
}

func TestFacade_ListOrdersOwnershipFiltered(t *testing.T) {
	f := newFacadeFixture()
	clientA := f.mustCreateClient(t, "Client A")
	clientB := f.mustCreateClient(t, "Client B")
	orderA := f.mustCreateOrder(t, clientA)
	f.mustCreateOrder(t, clientB)

	all, err := f.ListOrders(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := f.ListOrders(context.Background(), clientIdentity(clientA))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, orderA, mine[0].Order.ID)
}

func TestFacade_GetOrderHidesForeignOrders(t *testing.T) {
	f := newFacadeFixture()
	clientA := f.mustCreateClient(t, "Client A")
	clientB := f.mustCreateClient(t, "Client B")
	orderB := f.mustCreateOrder(t, clientB)

	_, err := f.GetOrder(context.Background(), clientIdentity(clientA), orderB)
	require.ErrorIs(t, err, ordersports.ErrNotFound)

	owned, err := f.GetOrder(context.Background(), clientIdentity(clientB), orderB)
	require.NoError(t, err)
	require.Equal(t, orderB, owned.Order.ID)
}
