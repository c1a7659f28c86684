package ports

import (
	"context"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*projection.Projection[*domain.Part], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Part], error)
	Create(ctx context.Context, input types.CreatePartInput) (*projection.Projection[*domain.Part], error)
	Update(ctx context.Context, id string, input types.UpdatePartInput) (*projection.Projection[*domain.Part], error)
	Delete(ctx context.Context, id string) error
}
