package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CustomerCancelsOwnOrder(t *testing.T) {
	ctx := t.Context()
	cancelled := scheduledOrder(t)
	cmd, err := commands.NewCancelOrderCommand(cancelled.ID(), cancelled.CustomerID(), kernel.RoleCustomer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once(),
		repo.On("Update", mock.Anything, cancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CustomerCannotCancelForeignOrder(t *testing.T) {
	ctx := t.Context()
	cancelled := scheduledOrder(t)
	cmd, err := commands.NewCancelOrderCommand(cancelled.ID(), kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRoleNotAllowed)
	assert.Equal(t, order.StatusScheduled, cancelled.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	cancelled := scheduledOrder(t)
	require.NoError(t, cancelled.Cancel())
	cmd, err := commands.NewCancelOrderCommand(cancelled.ID(), kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertExpectations(t)
}

func TestAssignVendorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assigned := scheduledOrder(t)
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewAssignVendorCommand(assigned.ID(), vendorID, kernel.RoleAdmin)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once(),
		repo.On("Update", mock.Anything, assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignVendorCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, assigned.Vendor())
	assert.True(t, assigned.Vendor().IsEqual(vendorID))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAssignVendorCommandHandler_Handle_NonAdmin(t *testing.T) {
	cmd, err := commands.NewAssignVendorCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleVendor)
	require.NoError(t, err)

	err = commands.NewAssignVendorCommandHandler(new(MockOrderUoWFactory)).Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRoleNotAllowed)
}
