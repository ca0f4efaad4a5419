package commands

import (
	"errors"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand stages a new booking recipient.
//
// Example:
//
//	details, err := party.NewParty("Jane", "jane@example.test", "0831111111", party.Locker, "ABC001", party.StreetAddress{})
//	cmd, err := NewCreateCustomerCommand(kernel.NewUUID(), details)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    party.Party

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID kernel.UUID, details party.Party) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDetails(details),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Details() party.Party    { return c.details }

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setDetails(details party.Party) error {
	if err := details.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer details", err)
	}
	c.details = details
	return nil
}
