package commands

import (
	"context"

	"github.com/facebookgo/clock"
)

// UpdateCustomerCommandHandler loads, changes and saves a customer in one transaction.
// Returns errs.ObjectNotFoundError when the customer does not exist.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      clock.Clock
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory, clk clock.Clock) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.Update(cmd.Details(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
