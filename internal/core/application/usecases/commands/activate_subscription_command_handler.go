package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ActivateSubscriptionCommandHandler starts or extends subscriptions. The
// entitlement record is created lazily on the first activation.
type ActivateSubscriptionCommandHandler struct {
	uowFactory EntitlementUoWFactory
}

// NewActivateSubscriptionCommandHandler creates a handler for subscription
// activation.
func NewActivateSubscriptionCommandHandler(uowFactory EntitlementUoWFactory) ActivateSubscriptionCommandHandler {
	return ActivateSubscriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle activates the subscription for one plan period. An unexpired
// subscription is extended from its current expiry.
func (h ActivateSubscriptionCommandHandler) Handle(ctx context.Context, command ActivateSubscriptionCommand) error {
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

	repo := uow.EntitlementRepository()
	now := time.Now()

	ent, err := repo.GetByCustomer(ctx, command.CustomerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		ent, err = entitlement.NewEntitlement(kernel.NewUUID(), command.CustomerID())
		if err != nil {
			return err
		}
		if err := ent.Activate(command.Plan(), now); err != nil {
			return err
		}
		if err := repo.Add(ctx, ent); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := ent.Activate(command.Plan(), now); err != nil {
			return err
		}
		if err := repo.Update(ctx, ent); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
