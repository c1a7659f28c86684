package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// Service orchestrates the order engine use cases. It validates references
// against the client directory and part catalog at write time, and resolves
// them to snapshots on every read.
type Service struct {
	repo    ports.Repository
	clients ports.ClientDirectory
	parts   ports.PartCatalog
}

// NewService wires the order engine with its collaborators.
func NewService(repo ports.Repository, clients ports.ClientDirectory, parts ports.PartCatalog) *Service {
	return &Service{repo: repo, clients: clients, parts: parts}
}

// List returns all orders with references resolved. A reference left dangling
// by a later client or part deletion resolves to a nil snapshot.
func (s *Service) List(ctx context.Context) ([]*types.OrderView, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*types.OrderView, 0, len(stored))
	for _, entry := range stored {
		view, err := s.resolve(ctx, entry)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetByID loads a single order with references resolved.
func (s *Service) GetByID(ctx context.Context, id string) (*types.OrderView, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, stored)
}

// Create validates and persists a new order. The store assigns the id and the
// status defaults to open when omitted. Referenced records must exist at this
// moment; the engine does not reserve or decrement part stock.
func (s *Service) Create(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	order, err := domain.NewOrder(uuid.NewString(), input.ClientID, toDomainItems(input.LineItems), input.Description, domain.Status(input.Status))
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.checkReferences(ctx, order); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, saved)
}

// Update applies the enumerated field set to an existing order. Line items
// are replaced wholesale, and every reference carried by the resulting order
// must resolve at this write, supplied or not.
func (s *Service) Update(ctx context.Context, id string, input types.UpdateOrderInput) (*types.OrderView, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order := existing.Entity
	if input.ClientID != nil {
		if err := order.AssignClient(*input.ClientID); err != nil {
			return nil, mapError(err)
		}
	}
	if input.LineItems != nil {
		if err := order.ReplaceLineItems(toDomainItems(*input.LineItems)); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Description != nil {
		order.Describe(*input.Description)
	}
	if input.Status != nil {
		if err := order.UpdateStatus(domain.Status(*input.Status)); err != nil {
			return nil, mapError(err)
		}
	}
	if err := s.checkReferences(ctx, order); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, saved)
}

// Delete removes an order. Deleting an already-removed id reports NotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// checkReferences verifies every reference resolves right now. The check and
// the subsequent write are not one transaction: a record deleted in between
// leaves a dangling reference, which reads surface as a nil snapshot.
func (s *Service) checkReferences(ctx context.Context, order *domain.Order) error {
	client, err := s.clients.SnapshotClient(ctx, order.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("%w %q", ErrUnknownClient, order.ClientID)
	}
	for _, partID := range order.PartIDs() {
		part, err := s.parts.SnapshotPart(ctx, partID)
		if err != nil {
			return err
		}
		if part == nil {
			return fmt.Errorf("%w %q", ErrUnknownPart, partID)
		}
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, stored *projection.Projection[*domain.Order]) (*types.OrderView, error) {
	order := stored.Entity
	client, err := s.clients.SnapshotClient(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	lines := make([]types.LineView, 0, len(order.LineItems))
	snapshots := make(map[string]*types.PartSummary, len(order.LineItems))
	for _, item := range order.LineItems {
		part, ok := snapshots[item.PartID]
		if !ok {
			part, err = s.parts.SnapshotPart(ctx, item.PartID)
			if err != nil {
				return nil, err
			}
			snapshots[item.PartID] = part
		}
		lines = append(lines, types.LineView{PartID: item.PartID, Quantity: item.Quantity, Part: part})
	}
	return &types.OrderView{
		Order:    order,
		Client:   client,
		Lines:    lines,
		Metadata: stored.Metadata,
	}, nil
}

func toDomainItems(items []types.LineItemInput) []domain.LineItem {
	converted := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, domain.LineItem{PartID: item.PartID, Quantity: item.Quantity})
	}
	return converted
}

var _ ports.Service = (*Service)(nil)
