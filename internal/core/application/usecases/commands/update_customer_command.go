package commands

import (
	"errors"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces a customer's contact and endpoint details.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    party.Party

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.UUID, details party.Party) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{guard: guard.NewConstructorGuard()}

	var detailsErr error
	if err := details.Validate(); err != nil {
		detailsErr = errs.NewValueIsRequiredErrorWithCause("customer details", err)
	}

	if err := errors.Join(customerID.Validate(), detailsErr); err != nil {
		return UpdateCustomerCommand{}, err
	}

	cmd.customerID = customerID
	cmd.details = details
	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCustomerCommand) Details() party.Party    { return c.details }
