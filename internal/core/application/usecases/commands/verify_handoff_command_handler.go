package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// VerifyHandoffCommandHandler confirms physical handoffs. The aggregate
// performs the custodian, status and code checks; a write lost to a
// concurrent verification surfaces as order.ErrInvalidTransition, the same
// failure the loser would have seen had it loaded a moment later.
type VerifyHandoffCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyHandoffCommandHandler creates a handler for handoff verification.
func NewVerifyHandoffCommandHandler(uowFactory OrderUoWFactory) VerifyHandoffCommandHandler {
	return VerifyHandoffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the presented code and advances the order past the
// checkpoint.
func (h VerifyHandoffCommandHandler) Handle(ctx context.Context, command VerifyHandoffCommand) error {
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

	verified, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := verified.VerifyHandoff(command.Checkpoint(), command.ActorID(), command.Code()); err != nil {
		return err
	}

	if err := repo.Update(ctx, verified); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return order.ErrInvalidTransition
		}
		return err
	}

	return uow.Commit(ctx)
}
