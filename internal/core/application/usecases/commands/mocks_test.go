package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockEntitlementRepository struct{ mock.Mock }

func (m *MockEntitlementRepository) Add(ctx context.Context, e *entitlement.Entitlement) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntitlementRepository) Update(ctx context.Context, e *entitlement.Entitlement) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntitlementRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*entitlement.Entitlement, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entitlement.Entitlement), args.Error(1)
}

func (m *MockEntitlementRepository) GetAllActiveExpired(ctx context.Context, now time.Time) ([]*entitlement.Entitlement, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entitlement.Entitlement), args.Error(1)
}

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("Wash & Fold", 100, 1)
	require.NoError(t, err)
	return []order.LineItem{item}
}

// scheduledOrder builds a freshly placed order with the code "0093".
func scheduledOrder(t *testing.T) *order.Order {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	code, err := order.HandoffCodeFromString("0093")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testLineItems(t),
		"12 Charles Street", phone, order.PaymentMethodCOD,
		order.PaymentStatusNotPaid, 120, code, time.Now())
	require.NoError(t, err)
	return o
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) EntitlementRepository() ports.EntitlementRepository {
	args := m.Called()
	return args.Get(0).(ports.EntitlementRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEntitlementUoWFactory struct{ mock.Mock }

func (m *MockEntitlementUoWFactory) Create() commands.EntitlementUoW {
	args := m.Called()
	return args.Get(0).(commands.EntitlementUoW)
}
