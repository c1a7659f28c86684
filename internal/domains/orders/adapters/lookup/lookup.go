// Package lookup adapts the catalog and client directory services to the
// resolver ports consumed by the order engine, translating NotFound into the
// engine's resolve-or-null contract.
package lookup

import (
	"context"
	"errors"

	catalogports "github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	clientports "github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	orderports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
)

var (
	_ orderports.ClientDirectory = (*ClientDirectory)(nil)
	_ orderports.PartCatalog     = (*PartCatalog)(nil)
)

// ClientDirectory resolves client references through the directory service.
type ClientDirectory struct {
	clients clientports.Service
}

func NewClientDirectory(clients clientports.Service) *ClientDirectory {
	return &ClientDirectory{clients: clients}
}

// SnapshotClient looks up a client and returns nil when it no longer exists.
func (d *ClientDirectory) SnapshotClient(ctx context.Context, id string) (*types.ClientSummary, error) {
	stored, err := d.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientports.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	client := stored.Entity
	return &types.ClientSummary{
		ID:    client.ID,
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
	}, nil
}

// PartCatalog resolves part references through the catalog service.
type PartCatalog struct {
	parts catalogports.Service
}

func NewPartCatalog(parts catalogports.Service) *PartCatalog {
	return &PartCatalog{parts: parts}
}

// SnapshotPart looks up a part and returns nil when it no longer exists.
func (c *PartCatalog) SnapshotPart(ctx context.Context, id string) (*types.PartSummary, error) {
	stored, err := c.parts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	part := stored.Entity
	return &types.PartSummary{
		ID:        part.ID,
		Name:      part.Name,
		Category:  part.Category,
		UnitPrice: part.UnitPrice,
	}, nil
}
