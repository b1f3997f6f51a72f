package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrVerifyHandoffCommandIsNotConstructed = errors.New(
	"VerifyHandoffCommand must be created via NewVerifyHandoffCommand constructor",
)

// VerifyHandoffCommand represents a custodian presenting the handoff code
// at a checkpoint. The presented code travels as the raw string; the
// aggregate compares it character for character against the stored code.
type VerifyHandoffCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    kernel.UUID
	checkpoint order.Checkpoint
	code       string

	guard guard.ConstructorGuard
}

// NewVerifyHandoffCommand creates a command to verify a handoff. The code
// is required but deliberately not validated for shape here; a malformed
// code simply fails the comparison.
func NewVerifyHandoffCommand(orderID kernel.UUID, actorID kernel.UUID, checkpoint order.Checkpoint, code string) (VerifyHandoffCommand, error) {
	cmd := VerifyHandoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setCheckpoint(checkpoint),
		cmd.setCode(code),
	); err != nil {
		return VerifyHandoffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyHandoffCommand) Validate() error {
	return c.guard.Validate(ErrVerifyHandoffCommandIsNotConstructed)
}

// OrderID returns the order being handed off.
func (c VerifyHandoffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the presenting custodian.
func (c VerifyHandoffCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Checkpoint returns the handoff checkpoint.
func (c VerifyHandoffCommand) Checkpoint() order.Checkpoint {
	return c.checkpoint
}

// Code returns the presented code.
func (c VerifyHandoffCommand) Code() string {
	return c.code
}

func (c *VerifyHandoffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *VerifyHandoffCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *VerifyHandoffCommand) setCheckpoint(cp order.Checkpoint) error {
	if err := cp.Validate(); err != nil {
		return err
	}
	c.checkpoint = cp
	return nil
}

func (c *VerifyHandoffCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}
