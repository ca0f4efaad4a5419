package commands

import (
	"context"
	"errors"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand removes a local booking record. The shipment on the
// locker network is left untouched.
type DeleteBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewDeleteBookingCommand(bookingID kernel.UUID) (DeleteBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return DeleteBookingCommand{}, err
	}
	return DeleteBookingCommand{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

func (c DeleteBookingCommand) BookingID() kernel.UUID { return c.bookingID }

type DeleteBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewDeleteBookingCommandHandler(uowFactory BookingUoWFactory) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
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

	if err := uow.BookingRepository().Delete(ctx, cmd.BookingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
