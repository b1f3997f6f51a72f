package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// PlaceOrderCommandHandler prices and persists new orders. It loads the
// customer's entitlement, lets the pricing service decide between a free
// subscription order and a paid one, and writes the resulting order and the
// updated free order ledger in a single transaction.
type PlaceOrderCommandHandler struct {
	uowFactory  UoWFactory
	pricing     services.PricingService
	deliveryFee int
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// deliveryFee is the flat fee added to every paid order.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingService,
	deliveryFee int,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		pricing:     pricing,
		deliveryFee: deliveryFee,
	}
}

// Handle places the order and returns the persisted aggregate. The caller
// owns deciding who sees the handoff code; the returned order carries it.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	ent, err := uow.EntitlementRepository().GetByCustomer(ctx, command.CustomerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	quote, err := h.pricing.Price(ent, command.Items(), h.deliveryFee,
		command.PaymentMethod(), command.PaymentConfirmed(), now)
	if err != nil {
		return nil, err
	}

	code, err := order.NewHandoffCode()
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.Items(),
		command.Address(),
		command.Phone(),
		quote.PaymentMethod,
		quote.PaymentStatus,
		quote.TotalPrice,
		code,
		now,
	)
	if err != nil {
		return nil, err
	}

	// The ledger update and the order insert share one transaction.
	if quote.FreeOrder {
		if err := uow.EntitlementRepository().Update(ctx, ent); err != nil {
			return nil, err
		}
	}

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
