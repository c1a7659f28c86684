package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oficinapp/repairshop-api/internal/domains/clients/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// ErrInvalidInput signals the request violated a directory invariant.
var ErrInvalidInput = errors.New("invalid client input")

// Service orchestrates the client directory use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Client], error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Client], error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input types.CreateClientInput) (*projection.Projection[*domain.Client], error) {
	client, err := domain.NewClient(uuid.NewString(), input.Name)
	if err != nil {
		return nil, mapError(err)
	}
	client.SetEmail(input.Email)
	client.SetPhone(input.Phone)
	return s.repo.Save(ctx, client)
}

func (s *Service) Update(ctx context.Context, id string, input types.UpdateClientInput) (*projection.Projection[*domain.Client], error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client := existing.Entity
	if input.Name != nil {
		if err := client.Rename(*input.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Email != nil {
		client.SetEmail(*input.Email)
	}
	if input.Phone != nil {
		client.SetPhone(*input.Phone)
	}
	return s.repo.Save(ctx, client)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func mapError(err error) error {
	if errors.Is(err, domain.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
