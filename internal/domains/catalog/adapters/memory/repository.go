package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog persistence adapter used for dev and tests.
type Repository struct {
	mu    sync.RWMutex
	parts map[string]*storedPart
	now   func() time.Time
}

type storedPart struct {
	part     *domain.Part
	metadata projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		parts: map[string]*storedPart{},
		now:   time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Save inserts or replaces a part, stamping UpdatedAt on every write.
func (r *Repository) Save(_ context.Context, part *domain.Part) (*projection.Projection[*domain.Part], error) {
	if part == nil {
		return nil, errors.New("cannot save nil part")
	}
	clone := *part
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if entry, ok := r.parts[clone.ID]; ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}
	r.parts[clone.ID] = &storedPart{part: &clone, metadata: metadata}
	return partCopy(r.parts[clone.ID]), nil
}

// GetByID fetches a part if present.
func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Part], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.parts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return partCopy(entry), nil
}

// Delete removes a part. Deleting an already-removed id reports NotFound.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parts[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.parts, id)
	return nil
}

// List returns all stored parts.
func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Part], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Part], 0, len(r.parts))
	for _, entry := range r.parts {
		list = append(list, partCopy(entry))
	}
	return list, nil
}

func partCopy(entry *storedPart) *projection.Projection[*domain.Part] {
	clone := *entry.part
	return projection.New(&clone, entry.metadata.CreatedAt, entry.metadata.UpdatedAt)
}
