package queries

import (
	"errors"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

type GetCustomerQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(id kernel.UUID) (GetCustomerQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) ID() kernel.UUID {
	return q.id
}
