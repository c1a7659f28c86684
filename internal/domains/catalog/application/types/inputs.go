package types

// CreatePartInput carries the full field set required to register a part.
type CreatePartInput struct {
	Name          string
	Category      string
	UnitPrice     float64
	StockQuantity int
	Description   string
}

// UpdatePartInput enumerates the updatable fields; nil means "leave unchanged".
// Updates outside this set are rejected at the transport boundary.
type UpdatePartInput struct {
	Name          *string
	Category      *string
	UnitPrice     *float64
	StockQuantity *int
	Description   *string
}
