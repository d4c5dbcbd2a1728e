package commands_test

import (
	"testing"

	"sellerhub/internal/core/application/usecases/commands"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// readyOrder builds an order driven to the ready status.
func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newStoredOrder(t)
	require.NoError(t, aggregate.Transition(order.StatusAccepted, ""))
	require.NoError(t, aggregate.Transition(order.StatusPreparing, ""))
	require.NoError(t, aggregate.Transition(order.StatusReady, ""))
	return aggregate
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := readyOrder(t)
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(aggregate.ID(), courierID, "Ravi", "+15550001111")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusAssigned, aggregate.Status())
	require.NotNil(t, aggregate.Delivery())
	assert.Equal(t, courierID, aggregate.Delivery().CourierID())
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_NotReady_RollsBack(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t) // still in new
	cmd, err := commands.NewAssignDeliveryCommand(
		aggregate.ID(), kernel.NewUUID(), "Ravi", "+15550001111")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Nil(t, aggregate.Delivery())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewAssignDeliveryCommand_MissingCourierDetails(t *testing.T) {
	_, err := commands.NewAssignDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), "", "+1555")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCourierNameIsRequired)

	_, err = commands.NewAssignDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), "Ravi", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCourierPhoneIsRequired)
}
