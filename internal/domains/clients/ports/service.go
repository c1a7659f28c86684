package ports

import (
	"context"

	"github.com/oficinapp/repairshop-api/internal/domains/clients/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// Service exposes client directory use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*projection.Projection[*domain.Client], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Client], error)
	Create(ctx context.Context, input types.CreateClientInput) (*projection.Projection[*domain.Client], error)
	Update(ctx context.Context, id string, input types.UpdateClientInput) (*projection.Projection[*domain.Client], error)
	Delete(ctx context.Context, id string) error
}
