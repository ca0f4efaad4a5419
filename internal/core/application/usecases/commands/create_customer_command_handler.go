package commands

import (
	"context"

	"lockerbooking/internal/core/domain/model/customer"

	"github.com/facebookgo/clock"
)

// CreateCustomerCommandHandler persists a new customer in its own transaction.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      clock.Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clk clock.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
