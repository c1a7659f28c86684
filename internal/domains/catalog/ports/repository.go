package ports

import (
	"context"
	"errors"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var ErrNotFound = errors.New("part not found")

// Repository persists catalog parts.
type Repository interface {
	Save(ctx context.Context, part *domain.Part) (*projection.Projection[*domain.Part], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Part], error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*projection.Projection[*domain.Part], error)
}
