package commands_test

import (
	"testing"

	"sellerhub/internal/core/application/usecases/commands"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(id, order.StatusCancelled, "customer changed mind")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.StatusCancelled, cmd.Target())
	assert.Equal(t, "customer changed mind", cmd.Notes())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.StatusAccepted, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.StatusUnknown, "")
	require.Error(t, err)
}

func TestNewSetItemPackedCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewSetItemPackedCommand(kernel.UUID{}, kernel.NewUUID(), true)
	require.Error(t, err)

	_, err = commands.NewSetItemPackedCommand(kernel.NewUUID(), kernel.UUID{}, true)
	require.Error(t, err)
}

func TestNewSetPaymentStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewSetPaymentStatusCommand(kernel.NewUUID(), order.PaymentUnknown)
	require.Error(t, err)
}

func TestNewRemoveOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRemoveOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
