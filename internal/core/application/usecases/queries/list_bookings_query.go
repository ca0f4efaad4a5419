package queries

import (
	"encoding/json"
	"errors"
	"time"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery or NewListCustomerBookingsQuery",
)

// ListBookingsQuery lists bookings newest first, optionally only those of one customer.
type ListBookingsQuery struct {
	customerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListBookingsQuery() ListBookingsQuery {
	return ListBookingsQuery{guard: guard.NewConstructorGuard()}
}

func NewListCustomerBookingsQuery(customerID kernel.UUID) (ListBookingsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListBookingsQuery{}, err
	}
	return ListBookingsQuery{customerID: &customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// CustomerID is nil when the query spans all customers.
func (q ListBookingsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

type BookingReadModel struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Size         string
	Reference    string
	Status       string
	ShipmentData json.RawMessage
	CreatedAt    time.Time
}
