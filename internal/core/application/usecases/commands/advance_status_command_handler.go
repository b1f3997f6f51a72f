package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// AdvanceStatusCommandHandler applies operational status updates.
//
// Role rules: admins may request any legal transition. Vendors may only
// move an order into In Progress or Washed, and never on an order assigned
// to a different vendor. Agents and customers do not advance status
// directly; their moves go through the claim, handoff and cancel flows.
//
// Requesting the order's current status is an idempotent no-op: nothing is
// written and no error is returned. A lost write race surfaces verbatim as
// the store's version conflict for the caller to retry.
type AdvanceStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceStatusCommandHandler creates a handler for status updates.
func NewAdvanceStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to the command's target status.
func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, command AdvanceStatusCommand) error {
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

	advanced, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := advanceAllowed(command, advanced); err != nil {
		return err
	}

	if advanced.Status() == command.Target() {
		return nil
	}

	if err := advanced.Advance(command.Target()); err != nil {
		return err
	}

	if err := repo.Update(ctx, advanced); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func advanceAllowed(command AdvanceStatusCommand, advanced *order.Order) error {
	switch command.ActorRole() {
	case kernel.RoleAdmin:
		return nil
	case kernel.RoleVendor:
		if command.Target() != order.StatusInProgress && command.Target() != order.StatusWashed {
			return ErrRoleNotAllowed
		}
		if advanced.Vendor() != nil && !advanced.Vendor().IsEqual(command.ActorID()) {
			return ErrRoleNotAllowed
		}
		return nil
	default:
		return ErrRoleNotAllowed
	}
}
