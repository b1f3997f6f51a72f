package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Checkpoint identifies one of the four code-gated handoffs of the two-leg
// model. Each checkpoint fixes which status the order must currently hold,
// which status it advances to, and whose custody the presented code proves.
type Checkpoint int

const (
	// CheckpointUnknown represents an invalid or undefined checkpoint.
	CheckpointUnknown Checkpoint = iota

	// CheckpointPickup: the pickup agent takes the order from the customer.
	CheckpointPickup

	// CheckpointVendorReceipt: the vendor receives the order from the
	// pickup agent.
	CheckpointVendorReceipt

	// CheckpointDeliveryPickup: the delivery agent takes the washed order
	// from the vendor.
	CheckpointDeliveryPickup

	// CheckpointFinalDelivery: the delivery agent returns the order to the
	// customer.
	CheckpointFinalDelivery
)

func getCheckpointStrings() map[Checkpoint]string {
	return map[Checkpoint]string{
		CheckpointPickup:         "pickup",
		CheckpointVendorReceipt:  "vendor-receipt",
		CheckpointDeliveryPickup: "delivery-pickup",
		CheckpointFinalDelivery:  "final-delivery",
	}
}

// CheckpointFromString parses the wire representation of a checkpoint.
func CheckpointFromString(s string) (Checkpoint, error) {
	for cp, str := range getCheckpointStrings() {
		if str == s {
			return cp, nil
		}
	}
	return CheckpointUnknown, errs.NewValueIsInvalidErrorWithCause("checkpoint",
		fmt.Errorf("%q is not a known checkpoint", s))
}

// String returns the wire representation, or "unknown" for invalid values.
func (c Checkpoint) String() string {
	if s, ok := getCheckpointStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects CheckpointUnknown and out-of-range values.
func (c Checkpoint) Validate() error {
	if _, ok := getCheckpointStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("checkpoint",
			fmt.Errorf("%d is not a valid checkpoint", c))
	}
	return nil
}

// RequiredStatus is the status the order must hold for this checkpoint to
// verify. A verification that already succeeded moved the order past this
// status, which is what makes a second call fail.
func (c Checkpoint) RequiredStatus() Status {
	switch c {
	case CheckpointPickup:
		return StatusReadyForPickup
	case CheckpointVendorReceipt:
		return StatusPickedUp
	case CheckpointDeliveryPickup:
		return StatusPickingUp
	case CheckpointFinalDelivery:
		return StatusDeliveryPickedUp
	default:
		return StatusUnknown
	}
}

// NextStatus is the status the order advances to on successful verification.
func (c Checkpoint) NextStatus() Status {
	switch c {
	case CheckpointPickup:
		return StatusPickedUp
	case CheckpointVendorReceipt:
		return StatusWashing
	case CheckpointDeliveryPickup:
		return StatusDeliveryPickedUp
	case CheckpointFinalDelivery:
		return StatusDelivered
	default:
		return StatusUnknown
	}
}
