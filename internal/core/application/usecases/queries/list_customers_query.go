package queries

import (
	"errors"
	"time"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery lists every customer, newest first.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// CustomerReadModel is a customer as shown to the operator.
type CustomerReadModel struct {
	ID kernel.UUID
	PartyReadModel
	CreatedAt time.Time
	UpdatedAt time.Time
}
