package access

import (
	"context"
	"errors"

	catalogtypes "github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	catalogdomain "github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	catalogports "github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	clienttypes "github.com/oficinapp/repairshop-api/internal/domains/clients/application/types"
	clientdomain "github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	clientports "github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	identitydomain "github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var (
	// ErrUnauthenticated signals that no valid identity accompanied the call.
	ErrUnauthenticated = errors.New("caller is not authenticated")
	// ErrForbidden signals that the caller's role does not permit the operation.
	ErrForbidden = errors.New("caller is not allowed to perform this operation")
)

// Facade applies role checks in front of the catalog, client, and order services.
// Every method takes the caller's identity explicitly; there is no ambient
// request state.
type Facade struct {
	parts   catalogports.Service
	clients clientports.Service
	orders  ordersports.Service
	placer  ordersports.WorkflowOrchestrator
}

// New wires the facade over the three application services. placer handles
// order creation; pass an inline orchestrator when no durable engine runs.
func New(parts catalogports.Service, clients clientports.Service, orders ordersports.Service, placer ordersports.WorkflowOrchestrator) *Facade {
	return &Facade{parts: parts, clients: clients, orders: orders, placer: placer}
}

// ListParts is readable by any authenticated caller.
func (f *Facade) ListParts(ctx context.Context, caller identitydomain.Identity) ([]*projection.Projection[*catalogdomain.Part], error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	return f.parts.List(ctx)
}

// GetPart is readable by any authenticated caller.
func (f *Facade) GetPart(ctx context.Context, caller identitydomain.Identity, id string) (*projection.Projection[*catalogdomain.Part], error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	return f.parts.GetByID(ctx, id)
}

// CreatePart requires the admin role.
func (f *Facade) CreatePart(ctx context.Context, caller identitydomain.Identity, input catalogtypes.CreatePartInput) (*projection.Projection[*catalogdomain.Part], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.parts.Create(ctx, input)
}

// UpdatePart requires the admin role.
func (f *Facade) UpdatePart(ctx context.Context, caller identitydomain.Identity, id string, input catalogtypes.UpdatePartInput) (*projection.Projection[*catalogdomain.Part], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.parts.Update(ctx, id, input)
}

// DeletePart requires the admin role.
func (f *Facade) DeletePart(ctx context.Context, caller identitydomain.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return f.parts.Delete(ctx, id)
}

// ListClients requires the admin role.
func (f *Facade) ListClients(ctx context.Context, caller identitydomain.Identity) ([]*projection.Projection[*clientdomain.Client], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.clients.List(ctx)
}

// GetClient requires the admin role.
func (f *Facade) GetClient(ctx context.Context, caller identitydomain.Identity, id string) (*projection.Projection[*clientdomain.Client], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.clients.GetByID(ctx, id)
}

// CreateClient requires the admin role.
func (f *Facade) CreateClient(ctx context.Context, caller identitydomain.Identity, input clienttypes.CreateClientInput) (*projection.Projection[*clientdomain.Client], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.clients.Create(ctx, input)
}

// UpdateClient requires the admin role.
func (f *Facade) UpdateClient(ctx context.Context, caller identitydomain.Identity, id string, input clienttypes.UpdateClientInput) (*projection.Projection[*clientdomain.Client], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.clients.Update(ctx, id, input)
}

// DeleteClient requires the admin role.
func (f *Facade) DeleteClient(ctx context.Context, caller identitydomain.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return f.clients.Delete(ctx, id)
}

// ListOrders returns all orders for admins. Client-role callers see only
// orders linked to their own client record.
func (f *Facade) ListOrders(ctx context.Context, caller identitydomain.Identity) ([]*orderstypes.OrderView, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	views, err := f.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role == identitydomain.RoleAdmin {
		return views, nil
	}
	owned := make([]*orderstypes.OrderView, 0, len(views))
	for _, view := range views {
		if view != nil && view.Order != nil && view.Order.ClientID == caller.ID {
			owned = append(owned, view)
		}
	}
	return owned, nil
}

// GetOrder returns an order for admins, or for the client that owns it.
// Orders outside a client caller's visible set report not found rather than
// confirming their existence.
func (f *Facade) GetOrder(ctx context.Context, caller identitydomain.Identity, id string) (*orderstypes.OrderView, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	view, err := f.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != identitydomain.RoleAdmin {
		if view == nil || view.Order == nil || view.Order.ClientID != caller.ID {
			return nil, ordersports.ErrNotFound
		}
	}
	return view, nil
}

// CreateOrder requires the admin role and routes through the order placement
// orchestrator.
func (f *Facade) CreateOrder(ctx context.Context, caller identitydomain.Identity, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.placer.PlaceOrder(ctx, input)
}

// UpdateOrder requires the admin role.
func (f *Facade) UpdateOrder(ctx context.Context, caller identitydomain.Identity, id string, input orderstypes.UpdateOrderInput) (*orderstypes.OrderView, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return f.orders.Update(ctx, id, input)
}

// DeleteOrder requires the admin role.
func (f *Facade) DeleteOrder(ctx context.Context, caller identitydomain.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return f.orders.Delete(ctx, id)
}

func requireAuthenticated(caller identitydomain.Identity) error {
	if caller.ID == "" {
		return ErrUnauthenticated
	}
	if caller.Role != identitydomain.RoleAdmin && caller.Role != identitydomain.RoleClient {
		return ErrUnauthenticated
	}
	return nil
}

func requireAdmin(caller identitydomain.Identity) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if caller.Role != identitydomain.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
