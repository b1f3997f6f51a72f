package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivateSubscriptionCommandHandler_Handle_FirstActivation(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewActivateSubscriptionCommand(customerID, entitlement.PlanMonthly)
	require.NoError(t, err)

	repo := new(MockEntitlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(repo).Once(),
		repo.On("GetByCustomer", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*entitlement.Entitlement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntitlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewActivateSubscriptionCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestActivateSubscriptionCommandHandler_Handle_ExtendsExisting(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewActivateSubscriptionCommand(customerID, entitlement.PlanMonthly)
	require.NoError(t, err)

	ent, err := entitlement.NewEntitlement(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, ent.Activate(entitlement.PlanMonthly, time.Now()))
	firstExpiry := ent.ExpiresAt()

	repo := new(MockEntitlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(repo).Once(),
		repo.On("GetByCustomer", mock.Anything, customerID).Return(ent, nil).Once(),
		repo.On("Update", mock.Anything, ent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntitlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewActivateSubscriptionCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ent.ExpiresAt().After(firstExpiry))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestExpireSubscriptionsCommandHandler_Handle_SweepsLapsed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireSubscriptionsCommand()

	past := time.Now().Add(-40 * 24 * time.Hour)
	ent, err := entitlement.NewEntitlement(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, ent.Activate(entitlement.PlanMonthly, past))

	repo := new(MockEntitlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(repo).Once(),
		repo.On("GetAllActiveExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*entitlement.Entitlement{ent}, nil).Once(),
		repo.On("Update", mock.Anything, ent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntitlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewExpireSubscriptionsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, ent.IsActive(time.Now()))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestExpireSubscriptionsCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireSubscriptionsCommand()

	repo := new(MockEntitlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(repo).Once(),
		repo.On("GetAllActiveExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*entitlement.Entitlement{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntitlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewExpireSubscriptionsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}
