package ports

import (
	"context"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations required by the
// order engine.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error)
}
