package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents an operational status update outside the
// claim and handoff flows, such as the store starting processing or the
// vendor finishing a wash.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole kernel.Role
	target    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to move an order to the target
// status.
func NewAdvanceStatusCommand(orderID kernel.UUID, actorID kernel.UUID, actorRole kernel.Role, target order.Status) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the requesting actor.
func (c AdvanceStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the requesting actor's role.
func (c AdvanceStatusCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// Target returns the requested status.
func (c AdvanceStatusCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AdvanceStatusCommand) setActorRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *AdvanceStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
