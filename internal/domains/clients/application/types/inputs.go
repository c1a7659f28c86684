package types

// CreateClientInput carries the fields accepted when registering a client.
type CreateClientInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateClientInput enumerates the updatable fields; nil means "leave unchanged".
type UpdateClientInput struct {
	Name  *string
	Email *string
	Phone *string
}
