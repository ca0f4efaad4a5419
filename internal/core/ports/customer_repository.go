// Package ports defines the contracts between the booking core and its adapters:
// persistence, the locker network gateway and the terminal directory.
package ports

import (
	"context"

	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changed details of an existing customer.
	// Returns errs.ObjectNotFoundError if the customer does not exist.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer. Bookings made for it are kept.
	// Returns errs.ObjectNotFoundError if the customer does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer by its identifier.
	// Returns errs.ObjectNotFoundError if the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetMany retrieves the customers whose ids are given. Unknown ids are
	// skipped; the result order is unspecified.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*customer.Customer, error)
}
