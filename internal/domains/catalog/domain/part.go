package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("part name is required")
	ErrEmptyCategory = errors.New("part category is required")
	ErrNegativePrice = errors.New("unit price must be greater or equal to zero")
	ErrNegativeStock = errors.New("stock quantity must be greater or equal to zero")
)

// Part represents the aggregate managed by the catalog bounded context.
type Part struct {
	ID            string
	Name          string
	Category      string
	UnitPrice     float64
	StockQuantity int
	Description   string
}

// NewPart validates the invariants and builds a new Part aggregate.
func NewPart(id, name, category string, unitPrice float64, stockQuantity int) (*Part, error) {
	p := &Part{ID: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.Recategorize(category); err != nil {
		return nil, err
	}
	if err := p.SetUnitPrice(unitPrice); err != nil {
		return nil, err
	}
	if err := p.SetStockQuantity(stockQuantity); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the part name ensuring the invariant.
func (p *Part) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Recategorize moves the part into a non-empty category.
func (p *Part) Recategorize(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return ErrEmptyCategory
	}
	p.Category = category
	return nil
}

// SetUnitPrice stores the current unit price.
func (p *Part) SetUnitPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.UnitPrice = price
	return nil
}

// SetStockQuantity stores the on-hand quantity. Ordering does not adjust it.
func (p *Part) SetStockQuantity(qty int) error {
	if qty < 0 {
		return ErrNegativeStock
	}
	p.StockQuantity = qty
	return nil
}

// Describe replaces the free-text description.
func (p *Part) Describe(description string) {
	p.Description = strings.TrimSpace(description)
}

// Validate re-applies core invariants for persistence.
func (p *Part) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	if err := p.Recategorize(p.Category); err != nil {
		return err
	}
	if err := p.SetUnitPrice(p.UnitPrice); err != nil {
		return err
	}
	return p.SetStockQuantity(p.StockQuantity)
}
