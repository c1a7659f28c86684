package types

import (
	"time"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
)

// LoginInput carries submitted credentials.
type LoginInput struct {
	Email    string
	Password string
}

// EnsureAdminInput seeds the bootstrap administrator account.
type EnsureAdminInput struct {
	Email    string
	Password string
}

// Session is the outcome of a successful authentication.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
}
