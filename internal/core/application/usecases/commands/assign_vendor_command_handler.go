package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// AssignVendorCommandHandler records the processing vendor on an order.
// Admin only.
type AssignVendorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignVendorCommandHandler creates a handler for vendor assignment.
func NewAssignVendorCommandHandler(uowFactory OrderUoWFactory) AssignVendorCommandHandler {
	return AssignVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the vendor.
func (h AssignVendorCommandHandler) Handle(ctx context.Context, command AssignVendorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.ActorRole() != kernel.RoleAdmin {
		return ErrRoleNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	assigned, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := assigned.AssignVendor(command.VendorID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
