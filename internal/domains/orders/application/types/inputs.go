package types

// LineItemInput carries one (part reference, quantity) pair.
type LineItemInput struct {
	PartID   string
	Quantity int
}

// CreateOrderInput carries the fields accepted when opening an order.
// Status defaults to open when empty.
type CreateOrderInput struct {
	ClientID    string
	LineItems   []LineItemInput
	Description string
	Status      string
}

// UpdateOrderInput enumerates the updatable fields; nil means "leave
// unchanged". LineItems, when present, replace the stored sequence wholesale.
type UpdateOrderInput struct {
	ClientID    *string
	LineItems   *[]LineItemInput
	Description *string
	Status      *string
}
