package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler cancels orders. Customers may cancel their own
// orders, admins any order; nobody cancels a terminal one.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	cancelled, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	switch command.ActorRole() {
	case kernel.RoleAdmin:
	case kernel.RoleCustomer:
		if !cancelled.CustomerID().IsEqual(command.ActorID()) {
			return ErrRoleNotAllowed
		}
	default:
		return ErrRoleNotAllowed
	}

	if err := cancelled.Cancel(); err != nil {
		return err
	}

	if err := repo.Update(ctx, cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
