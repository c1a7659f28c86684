package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// Service orchestrates the catalog bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List exposes all parts.
func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Part], error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// GetByID loads a single part aggregate.
func (s *Service) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Part], error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// Create validates and persists a new part. The store assigns the id.
func (s *Service) Create(ctx context.Context, input types.CreatePartInput) (*projection.Projection[*domain.Part], error) {
	part, err := domain.NewPart(uuid.NewString(), input.Name, input.Category, input.UnitPrice, input.StockQuantity)
	if err != nil {
		return nil, mapError(err)
	}
	part.Describe(input.Description)
	saved, err := s.repo.Save(ctx, part)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Update applies the enumerated field set to an existing part.
func (s *Service) Update(ctx context.Context, id string, input types.UpdatePartInput) (*projection.Projection[*domain.Part], error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	part := existing.Entity
	if input.Name != nil {
		if err := part.Rename(*input.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Category != nil {
		if err := part.Recategorize(*input.Category); err != nil {
			return nil, mapError(err)
		}
	}
	if input.UnitPrice != nil {
		if err := part.SetUnitPrice(*input.UnitPrice); err != nil {
			return nil, mapError(err)
		}
	}
	if input.StockQuantity != nil {
		if err := part.SetStockQuantity(*input.StockQuantity); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Description != nil {
		part.Describe(*input.Description)
	}
	saved, err := s.repo.Save(ctx, part)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a part. Orders referencing it keep a dangling reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
