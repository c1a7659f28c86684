package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type storedUser struct {
	user     *domain.User
	metadata projection.Metadata
}

// Repository keeps users in process memory, guarded by a mutex.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*storedUser
	clock func() time.Time
}

// NewRepository builds an empty in-memory user store.
func NewRepository() *Repository {
	return &Repository{
		users: make(map[string]*storedUser),
		clock: time.Now,
	}
}

// WithClock overrides the metadata time source, intended for tests.
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Save(ctx context.Context, user *domain.User) (*projection.Projection[*domain.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	metadata := projection.Metadata{CreatedAt: now, UpdatedAt: now}
	if existing, ok := r.users[user.ID]; ok {
		metadata.CreatedAt = existing.metadata.CreatedAt
	}
	r.users[user.ID] = &storedUser{user: userCopy(user), metadata: metadata}
	return projection.New(userCopy(user), metadata.CreatedAt, metadata.UpdatedAt), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.User], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return projection.New(userCopy(stored.user), stored.metadata.CreatedAt, stored.metadata.UpdatedAt), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*projection.Projection[*domain.User], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := domain.NormalizeEmail(email)
	for _, stored := range r.users {
		if stored.user.Email == normalized {
			return projection.New(userCopy(stored.user), stored.metadata.CreatedAt, stored.metadata.UpdatedAt), nil
		}
	}
	return nil, ports.ErrNotFound
}

func userCopy(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clone := *user
	return &clone
}
