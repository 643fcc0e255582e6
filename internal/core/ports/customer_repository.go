package ports

import (
	"context"

	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier,
	// including the identifiers of its registered vehicles.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone retrieves a customer by phone number. Phone numbers are
	// unique across the customer directory.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
