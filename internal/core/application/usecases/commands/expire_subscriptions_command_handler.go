package commands

import (
	"context"
	"time"
)

// ExpireSubscriptionsCommandHandler deactivates subscriptions whose expiry
// has passed. Lapsed entitlements stop granting free orders the moment
// IsActive sees the expiry, so the sweep only reconciles the stored flag.
type ExpireSubscriptionsCommandHandler struct {
	uowFactory EntitlementUoWFactory
}

// NewExpireSubscriptionsCommandHandler creates a handler for the expiry sweep.
func NewExpireSubscriptionsCommandHandler(uowFactory EntitlementUoWFactory) ExpireSubscriptionsCommandHandler {
	return ExpireSubscriptionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates every lapsed subscription in one transaction.
func (h ExpireSubscriptionsCommandHandler) Handle(ctx context.Context, command ExpireSubscriptionsCommand) error {
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

	lapsed, err := repo.GetAllActiveExpired(ctx, now)
	if err != nil {
		return err
	}

	for _, ent := range lapsed {
		if !ent.Expire(now) {
			continue
		}
		if err := repo.Update(ctx, ent); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
