package ports

import (
	"context"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read contract for customer entities.
// Customers are provisioned outside this core, so the contract is read-only.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	// Returns ObjectNotFoundError if no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every known customer, ordered by name.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
