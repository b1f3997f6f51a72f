package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Leg identifies one physical handoff segment of an order's journey.
// Deployments without a separate delivery agent simply never claim the
// delivery leg; there is no distinct single-leg code path.
type Leg int

const (
	// LegUnknown represents an invalid or undefined leg.
	LegUnknown Leg = iota

	// LegPickup is the customer-to-vendor segment.
	LegPickup

	// LegDelivery is the vendor-to-customer segment.
	LegDelivery
)

func getLegStrings() map[Leg]string {
	return map[Leg]string{
		LegPickup:   "pickup",
		LegDelivery: "delivery",
	}
}

// LegFromString parses the wire representation of a leg.
func LegFromString(s string) (Leg, error) {
	for leg, str := range getLegStrings() {
		if str == s {
			return leg, nil
		}
	}
	return LegUnknown, errs.NewValueIsInvalidErrorWithCause("leg",
		fmt.Errorf("%q is not a known leg", s))
}

// String returns the wire representation, or "unknown" for invalid values.
func (l Leg) String() string {
	if s, ok := getLegStrings()[l]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects LegUnknown and out-of-range values.
func (l Leg) Validate() error {
	if _, ok := getLegStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("leg",
			fmt.Errorf("%d is not a valid leg", l))
	}
	return nil
}

// ClaimedStatus is the status an order moves to when this leg is claimed.
func (l Leg) ClaimedStatus() Status {
	switch l {
	case LegPickup:
		return StatusReadyForPickup
	case LegDelivery:
		return StatusPickingUp
	default:
		return StatusUnknown
	}
}

// ClaimableStatuses lists the statuses from which this leg may be claimed.
func (l Leg) ClaimableStatuses() []Status {
	switch l {
	case LegPickup:
		return []Status{StatusScheduled, StatusInProgress}
	case LegDelivery:
		return []Status{StatusWashed}
	default:
		return nil
	}
}

func (l Leg) isClaimableFrom(s Status) bool {
	for _, eligible := range l.ClaimableStatuses() {
		if eligible == s {
			return true
		}
	}
	return false
}
