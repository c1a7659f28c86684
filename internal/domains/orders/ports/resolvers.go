package ports

import (
	"context"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
)

// ClientDirectory resolves client references against the directory bounded
// context. A missing record yields (nil, nil): the engine treats absence as
// data, not as a failure.
type ClientDirectory interface {
	SnapshotClient(ctx context.Context, id string) (*types.ClientSummary, error)
}

// PartCatalog resolves part references against the catalog bounded context.
// Same contract as ClientDirectory: absent parts yield (nil, nil).
type PartCatalog interface {
	SnapshotPart(ctx context.Context, id string) (*types.PartSummary, error)
}
