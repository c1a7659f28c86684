package ports

import (
	"context"
	"errors"
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
)

var (
	// ErrInvalidCredentials covers both unknown accounts and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken signals a missing, malformed, or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the verified payload carried inside a session token.
type Claims struct {
	Subject   string
	Email     string
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	Issue(identity domain.Identity) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

// Service authenticates credentials and resolves bearer tokens to identities.
type Service interface {
	Authenticate(ctx context.Context, input types.LoginInput) (*types.Session, error)
	Authorize(ctx context.Context, token string) (*domain.Identity, error)
	EnsureAdmin(ctx context.Context, input types.EnsureAdminInput) (*domain.Identity, error)
}
