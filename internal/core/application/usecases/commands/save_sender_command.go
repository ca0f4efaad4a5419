package commands

import (
	"context"
	"errors"

	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"

	"github.com/facebookgo/clock"
)

var ErrSaveSenderCommandIsNotConstructed = errors.New(
	"SaveSenderCommand must be created via NewSaveSenderCommand constructor",
)

// SaveSenderCommand creates or replaces the sender every shipment is collected from.
type SaveSenderCommand struct { //nolint:recvcheck //using for validation
	details party.Party
	guard   guard.ConstructorGuard
}

func NewSaveSenderCommand(details party.Party) (SaveSenderCommand, error) {
	if err := details.Validate(); err != nil {
		return SaveSenderCommand{}, errs.NewValueIsRequiredErrorWithCause("sender details", err)
	}
	return SaveSenderCommand{details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveSenderCommand) Validate() error {
	return c.guard.Validate(ErrSaveSenderCommandIsNotConstructed)
}

func (c SaveSenderCommand) Details() party.Party { return c.details }

type SaveSenderCommandHandler struct {
	uowFactory SenderUoWFactory
	clock      clock.Clock
}

func NewSaveSenderCommandHandler(uowFactory SenderUoWFactory, clk clock.Clock) SaveSenderCommandHandler {
	return SaveSenderCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h *SaveSenderCommandHandler) Handle(ctx context.Context, cmd SaveSenderCommand) error {
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

	if err := uow.SenderRepository().Save(ctx, cmd.Details(), h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
