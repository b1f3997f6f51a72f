package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrClaimLegCommandIsNotConstructed = errors.New(
	"ClaimLegCommand must be created via NewClaimLegCommand constructor",
)

// ClaimLegCommand represents an agent's request for exclusive ownership of
// one leg of an order. At most one agent ever wins a leg; the loser of a
// race receives order.ErrAlreadyClaimed.
type ClaimLegCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	agentID   kernel.UUID
	agentRole kernel.Role
	leg       order.Leg

	guard guard.ConstructorGuard
}

// NewClaimLegCommand creates a command to claim a pickup or delivery leg.
func NewClaimLegCommand(orderID kernel.UUID, agentID kernel.UUID, agentRole kernel.Role, leg order.Leg) (ClaimLegCommand, error) {
	cmd := ClaimLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
		cmd.setAgentRole(agentRole),
		cmd.setLeg(leg),
	); err != nil {
		return ClaimLegCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimLegCommand) Validate() error {
	return c.guard.Validate(ErrClaimLegCommandIsNotConstructed)
}

// OrderID returns the order to claim on.
func (c ClaimLegCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the claiming agent.
func (c ClaimLegCommand) AgentID() kernel.UUID {
	return c.agentID
}

// AgentRole returns the claiming agent's role.
func (c ClaimLegCommand) AgentRole() kernel.Role {
	return c.agentRole
}

// Leg returns which leg is being claimed.
func (c ClaimLegCommand) Leg() order.Leg {
	return c.leg
}

func (c *ClaimLegCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimLegCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *ClaimLegCommand) setAgentRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.agentRole = role
	return nil
}

func (c *ClaimLegCommand) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	c.leg = leg
	return nil
}
