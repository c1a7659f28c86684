package ports

import (
	"context"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
)

// Service exposes order engine use cases to adapters. Read operations return
// views with client and part references resolved to current snapshots.
type Service interface {
	List(ctx context.Context) ([]*types.OrderView, error)
	GetByID(ctx context.Context, id string) (*types.OrderView, error)
	Create(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error)
	Update(ctx context.Context, id string, input types.UpdateOrderInput) (*types.OrderView, error)
	Delete(ctx context.Context, id string) error
}
