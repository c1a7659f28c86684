package ports

import (
	"context"
	"errors"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*projection.Projection[*domain.Order], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Order], error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*projection.Projection[*domain.Order], error)
}
