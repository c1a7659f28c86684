package ports

import (
	"context"
	"errors"

	"github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	Save(ctx context.Context, client *domain.Client) (*projection.Projection[*domain.Client], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Client], error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*projection.Projection[*domain.Client], error)
}
