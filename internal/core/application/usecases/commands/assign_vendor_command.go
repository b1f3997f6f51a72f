package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAssignVendorCommandIsNotConstructed = errors.New(
	"AssignVendorCommand must be created via NewAssignVendorCommand constructor",
)

// AssignVendorCommand represents an admin assigning the processing vendor
// for an order. A vendor is assigned once and never reassigned.
type AssignVendorCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	vendorID  kernel.UUID
	actorRole kernel.Role

	guard guard.ConstructorGuard
}

// NewAssignVendorCommand creates a command to assign a vendor to an order.
func NewAssignVendorCommand(orderID kernel.UUID, vendorID kernel.UUID, actorRole kernel.Role) (AssignVendorCommand, error) {
	cmd := AssignVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return AssignVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVendorCommand) Validate() error {
	return c.guard.Validate(ErrAssignVendorCommandIsNotConstructed)
}

// OrderID returns the order receiving a vendor.
func (c AssignVendorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor to assign.
func (c AssignVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// ActorRole returns the requesting actor's role.
func (c AssignVendorCommand) ActorRole() kernel.Role {
	return c.actorRole
}

func (c *AssignVendorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *AssignVendorCommand) setActorRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}
