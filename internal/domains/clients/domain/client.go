package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("client name is required")

// Client represents an account holder in the shop's directory.
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// NewClient builds a client ensuring required invariants.
func NewClient(id, name string) (*Client, error) {
	c := &Client{ID: id}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename trims and validates the client name.
func (c *Client) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// SetEmail normalizes the address to lowercase. Empty clears it.
// The directory treats email as case-insensitive identity, not as unique.
func (c *Client) SetEmail(email string) {
	c.Email = strings.ToLower(strings.TrimSpace(email))
}

// SetPhone stores the contact phone as-is after trimming.
func (c *Client) SetPhone(phone string) {
	c.Phone = strings.TrimSpace(phone)
}

// Validate re-applies core invariants for persistence.
func (c *Client) Validate() error {
	if err := c.Rename(c.Name); err != nil {
		return err
	}
	c.SetEmail(c.Email)
	c.SetPhone(c.Phone)
	return nil
}
