package domain

import (
	"errors"
	"strings"
)

// Role partitions accounts into capability classes.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

var (
	ErrEmptyName   = errors.New("user name must not be empty")
	ErrEmptyEmail  = errors.New("user email must not be empty")
	ErrEmptySecret = errors.New("user password hash must not be empty")
	ErrInvalidRole = errors.New("user role must be admin or client")
)

// User is a credentialed account in the identity directory.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// Identity is the authenticated principal threaded through access checks.
type Identity struct {
	ID    string
	Email string
	Role  Role
}

// NewUser builds a validated user aggregate.
func NewUser(id, name, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		ID:           id,
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Identity projects the account into its principal form.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Validate checks the aggregate invariants.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.PasswordHash == "" {
		return ErrEmptySecret
	}
	if u.Role != RoleAdmin && u.Role != RoleClient {
		return ErrInvalidRole
	}
	return nil
}

// NormalizeEmail canonicalizes an address for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseRole maps a raw string onto a known role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleClient:
		return RoleClient, nil
	default:
		return "", ErrInvalidRole
	}
}
