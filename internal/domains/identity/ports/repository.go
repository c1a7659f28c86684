package ports

import (
	"context"
	"errors"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// ErrNotFound signals a missing user record.
var ErrNotFound = errors.New("user not found")

// Repository stores credentialed accounts.
type Repository interface {
	Save(ctx context.Context, user *domain.User) (*projection.Projection[*domain.User], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.User], error)
	GetByEmail(ctx context.Context, email string) (*projection.Projection[*domain.User], error)
}
