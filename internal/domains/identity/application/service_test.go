package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	identitymemory "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/memory"
	identitytoken "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/token"
	identitytypes "github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

func newIdentityService() *Service {
	return NewService(
		identitymemory.NewRepository(),
		identitytoken.NewJWTService([]byte("test-secret"), time.Hour),
	)
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	svc := newIdentityService()

	first, err := svc.EnsureAdmin(context.Background(), identitytypes.EnsureAdminInput{
		Email:    "Admin@Example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, first.Role)
	require.Equal(t, "admin@example.com", first.Email)

	second, err := svc.EnsureAdmin(context.Background(), identitytypes.EnsureAdminInput{
		Email:    "admin@example.com",
		Password: "different",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestAuthenticate_Success(t *testing.T) {
	svc := newIdentityService()
	_, err := svc.EnsureAdmin(context.Background(), identitytypes.EnsureAdminInput{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	session, err := svc.Authenticate(context.Background(), identitytypes.LoginInput{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, domain.RoleAdmin, session.Identity.Role)
	require.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAuthenticate_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc := newIdentityService()
	_, err := svc.EnsureAdmin(context.Background(), identitytypes.EnsureAdminInput{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Authenticate(context.Background(), identitytypes.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	_, wrongErr := svc.Authenticate(context.Background(), identitytypes.LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, unknownErr, ports.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ports.ErrInvalidCredentials)
	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthorize_RoundTrip(t *testing.T) {
	svc := newIdentityService()
	admin, err := svc.EnsureAdmin(context.Background(), identitytypes.EnsureAdminInput{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	session, err := svc.Authenticate(context.Background(), identitytypes.LoginInput{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	identity, err := svc.Authorize(context.Background(), session.Token)
	require.NoError(t, err)
	require.Equal(t, admin.ID, identity.ID)
	require.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestAuthorize_GarbageToken(t *testing.T) {
	svc := newIdentityService()

	_, err := svc.Authorize(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestAuthorize_TokenForDeletedUser(t *testing.T) {
	repo := identitymemory.NewRepository()
	tokens := identitytoken.NewJWTService([]byte("test-secret"), time.Hour)
	svc := NewService(repo, tokens)

	// A well-signed token whose subject never existed must not authorize.
	token, _, err := tokens.Issue(domain.Identity{ID: "ghost", Email: "ghost@example.com", Role: domain.RoleClient})
	require.NoError(t, err)

	_, err = svc.Authorize(context.Background(), token)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}
