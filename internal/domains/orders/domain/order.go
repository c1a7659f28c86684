package domain

import (
	"errors"
	"strings"
)

// Status enumerates order progression. Any value may overwrite any other:
// the engine validates membership only, never a transition graph, so a
// completed order can be reopened by a later update.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var (
	ErrMissingClient   = errors.New("order client reference is required")
	ErrMissingPart     = errors.New("line item part reference is required")
	ErrInvalidQuantity = errors.New("line item quantity must be at least one")
	ErrInvalidStatus   = errors.New("order status is invalid")
)

// LineItem pairs a part reference with a requested quantity.
type LineItem struct {
	PartID   string
	Quantity int
}

// Order models a service order aggregate. References are stored as opaque
// ids; resolution against the catalog and directory happens on read.
type Order struct {
	ID          string
	ClientID    string
	LineItems   []LineItem
	Description string
	Status      Status
}

// NewOrder validates invariants and constructs a new Order aggregate.
func NewOrder(id, clientID string, items []LineItem, description string, status Status) (*Order, error) {
	o := &Order{ID: id}
	if err := o.AssignClient(clientID); err != nil {
		return nil, err
	}
	if err := o.ReplaceLineItems(items); err != nil {
		return nil, err
	}
	o.Describe(description)
	if err := o.UpdateStatus(status); err != nil {
		return nil, err
	}
	return o, nil
}

// AssignClient points the order at a client record.
func (o *Order) AssignClient(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrMissingClient
	}
	o.ClientID = clientID
	return nil
}

// ReplaceLineItems swaps the whole line item sequence. The engine never
// diffs old against new items; an empty sequence is allowed.
func (o *Order) ReplaceLineItems(items []LineItem) error {
	replaced := make([]LineItem, 0, len(items))
	for _, item := range items {
		item.PartID = strings.TrimSpace(item.PartID)
		if item.PartID == "" {
			return ErrMissingPart
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		replaced = append(replaced, item)
	}
	o.LineItems = replaced
	return nil
}

// Describe replaces the free-text description.
func (o *Order) Describe(description string) {
	o.Description = strings.TrimSpace(description)
}

// UpdateStatus ensures only known states are accepted and defaults to open.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusOpen
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// Validate re-applies the aggregate invariants.
func (o *Order) Validate() error {
	if err := o.AssignClient(o.ClientID); err != nil {
		return err
	}
	if err := o.ReplaceLineItems(o.LineItems); err != nil {
		return err
	}
	return o.UpdateStatus(o.Status)
}

// PartIDs returns the distinct part references across all line items.
func (o *Order) PartIDs() []string {
	seen := make(map[string]struct{}, len(o.LineItems))
	ids := make([]string, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if _, ok := seen[item.PartID]; ok {
			continue
		}
		seen[item.PartID] = struct{}{}
		ids = append(ids, item.PartID)
	}
	return ids
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
