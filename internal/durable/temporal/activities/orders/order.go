package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
)

// PersistOrderActivityName stores a service order through the order engine.
const PersistOrderActivityName = "orders.activities.PersistOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	persistService ordersports.Service
}

// NewActivities wires the order engine into the Temporal activities bundle.
func NewActivities(persistService ordersports.Service) *Activities {
	return &Activities{persistService: persistService}
}

// PersistOrder stores a new service order and returns its resolved view.
func (a *Activities) PersistOrder(ctx context.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.persistService == nil {
		logger.Error("order persist activity not initialized", "clientId", input.ClientID)
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "clientId", input.ClientID)
	view, err := a.persistService.Create(ctx, input)
	if err != nil {
		logger.Error("PersistOrder activity failed", "clientId", input.ClientID, "error", err)
		return nil, err
	}
	if view != nil && view.Order != nil {
		logger.Info("PersistOrder activity completed", "orderId", view.Order.ID)
	} else {
		logger.Info("PersistOrder activity completed")
	}
	return view, nil
}
