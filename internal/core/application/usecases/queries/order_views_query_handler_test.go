package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderViewsQueryHandlerTestSuite covers the per-role read models: customer
// history, order tracking, vendor queue, agent claims, and the daily count.
type OrderViewsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *OrderViewsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderViewsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderViewsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestCustomerOrders_SplitsCurrentAndPast() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	customerID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	active := makeOrder(customerID, order.StatusWashing, ptr(agentID), nil, ptr(kernel.NewUUID()), base.Add(2*time.Minute))
	delivered := makeOrder(customerID, order.StatusDelivered, ptr(agentID), ptr(agentID), nil, base.Add(time.Minute))
	cancelled := makeOrder(customerID, order.StatusCancelled, nil, nil, nil, base)
	foreign := makeOrder(kernel.NewUUID(), order.StatusScheduled, nil, nil, nil, base)

	for _, o := range []*order.Order{active, delivered, cancelled, foreign} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Current, 1)
	suite.Equal(active.ID(), result.Current[0].ID)
	suite.Equal("0042", result.Current[0].Code)

	suite.Require().Len(result.Past, 2)
	suite.Equal(delivered.ID(), result.Past[0].ID)
	suite.Equal(cancelled.ID(), result.Past[1].ID)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestTrackOrder_ReturnsItemsAndCode() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	o := makeOrder(customerID, order.StatusPickedUp, ptr(kernel.NewUUID()), nil, nil,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	handler := queries.NewTrackOrderQueryHandler(suite.db)
	query, err := queries.NewTrackOrderQuery(o.ID(), customerID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), result.ID)
	suite.Equal("Picked Up", result.Status)
	suite.Equal("0042", result.Code)
	suite.Equal("9876543210", result.Phone)
	suite.Require().Len(result.Items, 2)
	suite.Equal("Wash & Fold", result.Items[0].Name)
	suite.Equal(50, result.Items[0].UnitPrice)
	suite.Equal(2, result.Items[0].Quantity)
	suite.Equal("Ironing", result.Items[1].Name)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestTrackOrder_NotOwnedByCustomer_ReturnsNotFound() {
	ctx := context.Background()
	o := makeOrder(kernel.NewUUID(), order.StatusScheduled, nil, nil, nil,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	handler := queries.NewTrackOrderQueryHandler(suite.db)
	query, err := queries.NewTrackOrderQuery(o.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestVendorOrders_ReturnsProcessingQueueWithCode() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	vendorID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	washing := makeOrder(kernel.NewUUID(), order.StatusWashing, ptr(agentID), nil, ptr(vendorID), base.Add(time.Minute))
	washed := makeOrder(kernel.NewUUID(), order.StatusWashed, ptr(agentID), nil, ptr(vendorID), base)
	delivered := makeOrder(kernel.NewUUID(), order.StatusDelivered, ptr(agentID), ptr(agentID), ptr(vendorID), base)
	otherVendor := makeOrder(kernel.NewUUID(), order.StatusWashing, ptr(agentID), nil, ptr(kernel.NewUUID()), base)

	for _, o := range []*order.Order{washing, washed, delivered, otherVendor} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	handler := queries.NewGetVendorOrdersQueryHandler(suite.db)
	query, err := queries.NewGetVendorOrdersQuery(vendorID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(washing.ID(), result[0].ID)
	suite.Equal(washed.ID(), result[1].ID)
	suite.Equal("0042", result[0].Code)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestAgentOrders_ReturnsActiveClaimsOnly() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	agentID := kernel.NewUUID()

	claimed := makeOrder(kernel.NewUUID(), order.StatusReadyForPickup, ptr(agentID), nil, nil, base.Add(time.Minute))
	delivered := makeOrder(kernel.NewUUID(), order.StatusDelivered, ptr(agentID), ptr(agentID), nil, base)
	otherAgent := makeOrder(kernel.NewUUID(), order.StatusReadyForPickup, ptr(kernel.NewUUID()), nil, nil, base)

	for _, o := range []*order.Order{claimed, delivered, otherAgent} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	handler := queries.NewGetAgentOrdersQueryHandler(suite.db)
	query, err := queries.NewGetAgentOrdersQuery(agentID, order.LegPickup)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(claimed.ID(), result[0].ID)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestAgentOrders_DeliveryLegUsesDeliveryClaim() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)
	agentID := kernel.NewUUID()

	delivering := makeOrder(kernel.NewUUID(), order.StatusPickingUp, ptr(kernel.NewUUID()), ptr(agentID), nil, base)
	pickupOnly := makeOrder(kernel.NewUUID(), order.StatusReadyForPickup, ptr(agentID), nil, nil, base)

	suite.Require().NoError(suite.orderRepo.Add(ctx, delivering))
	suite.Require().NoError(suite.orderRepo.Add(ctx, pickupOnly))

	handler := queries.NewGetAgentOrdersQueryHandler(suite.db)
	query, err := queries.NewGetAgentOrdersQuery(agentID, order.LegDelivery)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(delivering.ID(), result[0].ID)
}

func (suite *OrderViewsQueryHandlerTestSuite) TestTodayOrderCount_CountsSinceMidnight() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	today := makeOrder(kernel.NewUUID(), order.StatusScheduled, nil, nil, nil, now)
	lastWeek := makeOrder(kernel.NewUUID(), order.StatusDelivered, nil, nil, nil, now.Add(-7*24*time.Hour))

	suite.Require().NoError(suite.orderRepo.Add(ctx, today))
	suite.Require().NoError(suite.orderRepo.Add(ctx, lastWeek))

	handler := queries.NewGetTodayOrderCountQueryHandler(suite.db)
	query, err := queries.NewGetTodayOrderCountQuery(time.UTC)
	suite.Require().NoError(err)

	count, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func TestOrderViewsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderViewsQueryHandlerTestSuite))
}
