package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTService([]byte("secret"), time.Hour)

	token, expiresAt, err := svc.Issue(domain.Identity{ID: "u1", Email: "u1@example.com", Role: domain.RoleClient})
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, "u1@example.com", claims.Email)
	require.Equal(t, domain.RoleClient, claims.Role)
	require.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTService([]byte("secret-a"), time.Hour)
	verifier := NewJWTService([]byte("secret-b"), time.Hour)

	token, _, err := issuer.Issue(domain.Identity{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewJWTService([]byte("secret"), time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.WithClock(func() time.Time { return issuedAt })
	token, _, err := svc.Issue(domain.Identity{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	svc.WithClock(time.Now)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewJWTService([]byte("secret"), time.Hour)

	_, err := svc.Verify("definitely.not.jwt")
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}
