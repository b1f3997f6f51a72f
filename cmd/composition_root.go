package cmd

import (
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	pricing, err := services.NewPricingService(config.Timezone)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
	}, nil
}

// Timezone returns the service's operating timezone.
func (c *CompositionRoot) Timezone() *time.Location {
	return c.config.Timezone
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.pricing, c.config.DeliveryFee)
}

func (c *CompositionRoot) CreateClaimLegCommandHandler() commands.ClaimLegCommandHandler {
	return commands.NewClaimLegCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyHandoffCommandHandler() commands.VerifyHandoffCommandHandler {
	return commands.NewVerifyHandoffCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignVendorCommandHandler() commands.AssignVendorCommandHandler {
	return commands.NewAssignVendorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateActivateSubscriptionCommandHandler() commands.ActivateSubscriptionCommandHandler {
	return commands.NewActivateSubscriptionCommandHandler(c.entitlementUoWFactory())
}

func (c *CompositionRoot) CreateExpireSubscriptionsCommandHandler() commands.ExpireSubscriptionsCommandHandler {
	return commands.NewExpireSubscriptionsCommandHandler(c.entitlementUoWFactory())
}

func (c *CompositionRoot) CreateGetUnclaimedOrdersQueryHandler() queries.GetUnclaimedOrdersQueryHandler {
	return queries.NewGetUnclaimedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentOrdersQueryHandler() queries.GetAgentOrdersQueryHandler {
	return queries.NewGetAgentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayOrderCountQueryHandler() queries.GetTodayOrderCountQueryHandler {
	return queries.NewGetTodayOrderCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) entitlementUoWFactory() commands.EntitlementUoWFactory {
	return FuncEntitlementUoWFactory(func() commands.EntitlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEntitlementUoWFactory func() commands.EntitlementUoW

func (f FuncEntitlementUoWFactory) Create() commands.EntitlementUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
