package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// ClaimLegCommandHandler arbitrates leg claims. The in-memory claim check
// catches stale claims; the conditional store write settles true races, and
// a lost write surfaces as order.ErrAlreadyClaimed so concurrent claimers
// get exactly one winner.
type ClaimLegCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimLegCommandHandler creates a handler for leg claim operations.
func NewClaimLegCommandHandler(uowFactory OrderUoWFactory) ClaimLegCommandHandler {
	return ClaimLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a leg claim. Pickup legs require the pickup agent role,
// delivery legs the delivery agent role; admins may claim either.
func (h ClaimLegCommandHandler) Handle(ctx context.Context, command ClaimLegCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if !legClaimAllowed(command.AgentRole(), command.Leg()) {
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

	claimed, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := claimed.ClaimLeg(command.Leg(), command.AgentID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, claimed); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return order.ErrAlreadyClaimed
		}
		return err
	}

	return uow.Commit(ctx)
}

func legClaimAllowed(role kernel.Role, leg order.Leg) bool {
	switch leg {
	case order.LegPickup:
		return role == kernel.RolePickupAgent || role == kernel.RoleAdmin
	case order.LegDelivery:
		return role == kernel.RoleDeliveryAgent || role == kernel.RoleAdmin
	default:
		return false
	}
}
