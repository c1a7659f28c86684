package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*storedOrder
	now    func() time.Time
}

type storedOrder struct {
	order    *domain.Order
	metadata projection.Metadata
}

func NewRepository() *Repository {
	return &Repository{
		orders: map[string]*storedOrder{},
		now:    time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Save inserts or replaces an order, stamping UpdatedAt on every write.
func (r *Repository) Save(_ context.Context, order *domain.Order) (*projection.Projection[*domain.Order], error) {
	if order == nil {
		return nil, errors.New("cannot save nil order")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if entry, ok := r.orders[clone.ID]; ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}
	r.orders[clone.ID] = &storedOrder{order: clone, metadata: metadata}
	return orderCopy(r.orders[clone.ID]), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return orderCopy(entry), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Order], 0, len(r.orders))
	for _, entry := range r.orders {
		list = append(list, orderCopy(entry))
	}
	return list, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.LineItems = append([]domain.LineItem{}, order.LineItems...)
	return &clone
}

func orderCopy(entry *storedOrder) *projection.Projection[*domain.Order] {
	return projection.New(cloneOrder(entry.order), entry.metadata.CreatedAt, entry.metadata.UpdatedAt)
}
