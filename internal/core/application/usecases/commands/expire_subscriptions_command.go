package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrExpireSubscriptionsCommandIsNotConstructed = errors.New(
	"ExpireSubscriptionsCommand must be created via NewExpireSubscriptionsCommand constructor",
)

// ExpireSubscriptionsCommand triggers a sweep that deactivates lapsed
// subscriptions. Parameterless; the periodic job issues it.
type ExpireSubscriptionsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireSubscriptionsCommand creates a command to run the expiry sweep.
func NewExpireSubscriptionsCommand() ExpireSubscriptionsCommand {
	return ExpireSubscriptionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireSubscriptionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSubscriptionsCommandIsNotConstructed)
}
