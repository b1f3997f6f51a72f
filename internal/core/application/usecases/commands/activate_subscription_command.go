package commands

import (
	"errors"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrActivateSubscriptionCommandIsNotConstructed = errors.New(
	"ActivateSubscriptionCommand must be created via NewActivateSubscriptionCommand constructor",
)

// ActivateSubscriptionCommand represents a confirmed subscription payment
// for a customer.
type ActivateSubscriptionCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	plan       entitlement.Plan

	guard guard.ConstructorGuard
}

// NewActivateSubscriptionCommand creates a command to start or extend a
// customer's subscription.
func NewActivateSubscriptionCommand(customerID kernel.UUID, plan entitlement.Plan) (ActivateSubscriptionCommand, error) {
	cmd := ActivateSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPlan(plan),
	); err != nil {
		return ActivateSubscriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrActivateSubscriptionCommandIsNotConstructed)
}

// CustomerID returns the subscribing customer.
func (c ActivateSubscriptionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Plan returns the purchased plan.
func (c ActivateSubscriptionCommand) Plan() entitlement.Plan {
	return c.plan
}

func (c *ActivateSubscriptionCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *ActivateSubscriptionCommand) setPlan(plan entitlement.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	c.plan = plan
	return nil
}
