package commands_test

import (
	"testing"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBookingsCommand_ValidInput(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCreateBookingsCommand(
		[]kernel.UUID{a, b, a},
		shipment.SizeXS,
		map[kernel.UUID]shipment.PackageSize{b: shipment.SizeL},
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, []kernel.UUID{a, b}, cmd.CustomerIDs())
	assert.Equal(t, shipment.SizeXS, cmd.SizeOf(a))
	assert.Equal(t, shipment.SizeL, cmd.SizeOf(b))
	assert.Equal(t, shipment.SizeXS, cmd.DefaultSize())
}

func TestNewCreateBookingsCommand_EmptySelection(t *testing.T) {
	_, err := commands.NewCreateBookingsCommand(nil, shipment.SizeXS, nil)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestNewCreateBookingsCommand_InvalidInput(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateBookingsCommand(
		[]kernel.UUID{id, {}},
		"XXL",
		map[kernel.UUID]shipment.PackageSize{id: "huge"},
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "size for customer "+id.String())
}

func TestCreateBookingsCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateBookingsCommand{}.Validate(), commands.ErrCreateBookingsCommandIsNotConstructed)
}
