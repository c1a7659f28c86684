package types

import (
	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// ClientSummary is the snapshot of a client record resolved on read.
type ClientSummary struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// PartSummary is the snapshot of a catalog part resolved on read.
type PartSummary struct {
	ID        string
	Name      string
	Category  string
	UnitPrice float64
}

// LineView pairs a stored line item with its resolved part snapshot.
// Part is nil when the referenced part no longer exists.
type LineView struct {
	PartID   string
	Quantity int
	Part     *PartSummary
}

// OrderView transports an order aggregate with its references resolved to
// current snapshots. Client is nil when the reference dangles; callers render
// that as "removed" rather than treating it as an error.
type OrderView struct {
	Order    *domain.Order
	Client   *ClientSummary
	Lines    []LineView
	Metadata projection.Metadata
}
