package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory client directory adapter.
type Repository struct {
	mu      sync.RWMutex
	clients map[string]*storedClient
	now     func() time.Time
}

type storedClient struct {
	client   *domain.Client
	metadata projection.Metadata
}

func NewRepository() *Repository {
	return &Repository{
		clients: map[string]*storedClient{},
		now:     time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Save(_ context.Context, client *domain.Client) (*projection.Projection[*domain.Client], error) {
	if client == nil {
		return nil, errors.New("cannot save nil client")
	}
	clone := *client
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if entry, ok := r.clients[clone.ID]; ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}
	r.clients[clone.ID] = &storedClient{client: &clone, metadata: metadata}
	return clientCopy(r.clients[clone.ID]), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Client], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.clients[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return clientCopy(entry), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Client], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Client], 0, len(r.clients))
	for _, entry := range r.clients {
		list = append(list, clientCopy(entry))
	}
	return list, nil
}

func clientCopy(entry *storedClient) *projection.Projection[*domain.Client] {
	clone := *entry.client
	return projection.New(&clone, entry.metadata.CreatedAt, entry.metadata.UpdatedAt)
}
