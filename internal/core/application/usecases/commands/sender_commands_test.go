package commands_test

import (
	"errors"
	"testing"
	"time"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveSenderCommandHandler_Handle(t *testing.T) {
	clk := clock.NewMock()
	advanceTo(clk, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	details := validDetails(t, "acme", "PUDO123")

	t.Run("should upsert sender", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSaveSenderCommand(details)
		require.NoError(t, err)

		repo := new(MockSenderRepository)
		uow := new(MockUoW)
		uow.On("SenderRepository").Return(repo)
		factory := new(MockSenderUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Save", ctx, details, clk.Now()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewSaveSenderCommandHandler(factory, clk)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should surface begin error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSaveSenderCommand(details)
		require.NoError(t, err)

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
		factory := new(MockSenderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSaveSenderCommandHandler(factory, clk)
		require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	})

	t.Run("should reject unconstructed details", func(t *testing.T) {
		_, err := commands.NewSaveSenderCommand(party.Party{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
