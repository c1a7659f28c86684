package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

var _ ports.Service = (*Service)(nil)

// Service implements authentication and token resolution over a user repository.
type Service struct {
	repo   ports.Repository
	tokens ports.TokenService
}

// NewService wires the identity collaborators.
func NewService(repo ports.Repository, tokens ports.TokenService) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Authenticate checks credentials and issues a session token.
// Unknown accounts and wrong passwords yield the same error so callers
// cannot probe which addresses exist.
func (s *Service) Authenticate(ctx context.Context, input types.LoginInput) (*types.Session, error) {
	stored, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user by email: %w", err)
	}
	user := stored.Entity
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, ports.ErrInvalidCredentials
	}
	identity := user.Identity()
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &types.Session{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// Authorize resolves a bearer token to the current identity behind it.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ports.ErrInvalidToken
	}
	stored, err := s.repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidToken
		}
		return nil, fmt.Errorf("load user by id: %w", err)
	}
	identity := stored.Entity.Identity()
	return &identity, nil
}

// EnsureAdmin creates the bootstrap administrator when the email is not yet
// registered. Re-running with the same email is a no-op.
func (s *Service) EnsureAdmin(ctx context.Context, input types.EnsureAdminInput) (*domain.Identity, error) {
	email := domain.NormalizeEmail(input.Email)
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		identity := existing.Entity.Identity()
		return &identity, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return nil, fmt.Errorf("load user by email: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	user, err := domain.NewUser(uuid.NewString(), "Admin", email, string(hash), domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save admin user: %w", err)
	}
	identity := stored.Entity.Identity()
	return &identity, nil
}
