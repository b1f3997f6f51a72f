package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The transition table
// below is the single definition of the legal graph; every operation that
// moves an order (advance, cancel, claim, handoff verification) derives its
// precondition from it.
//
// State transitions:
//
//	Scheduled → In Progress → Ready for Pickup → Picked Up → Washing →
//	Washed → Picking Up → Delivery Picked Up → Delivered
//
// with two extra edges: Picked Up → Completed (single-agent deployments
// where the pickup agent also returns the order) and Cancelled from any
// non-terminal state. Delivered, Completed and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusScheduled is the initial status at placement.
	StatusScheduled

	// StatusInProgress marks an order accepted for processing, before any
	// agent has claimed the pickup leg.
	StatusInProgress

	// StatusReadyForPickup is set when an agent claims the pickup leg.
	StatusReadyForPickup

	// StatusPickedUp is set when the pickup handoff code is verified.
	StatusPickedUp

	// StatusWashing is set when the vendor verifies receipt of the order.
	StatusWashing

	// StatusWashed marks washing finished; the delivery leg becomes claimable.
	StatusWashed

	// StatusPickingUp is set when an agent claims the delivery leg.
	StatusPickingUp

	// StatusDeliveryPickedUp is set when the delivery pickup code is verified.
	StatusDeliveryPickedUp

	// StatusDelivered is the terminal state of the two-leg model.
	StatusDelivered

	// StatusCompleted is the alternate terminal of the single-agent model,
	// reached directly from Picked Up.
	StatusCompleted

	// StatusCancelled is terminal and reachable from any non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "Unknown",
		StatusScheduled:        "Scheduled",
		StatusInProgress:       "In Progress",
		StatusReadyForPickup:   "Ready for Pickup",
		StatusPickedUp:         "Picked Up",
		StatusWashing:          "Washing",
		StatusWashed:           "Washed",
		StatusPickingUp:        "Picking Up",
		StatusDeliveryPickedUp: "Delivery Picked Up",
		StatusDelivered:        "Delivered",
		StatusCompleted:        "Completed",
		StatusCancelled:        "Cancelled",
	}
}

// successors is the central transition table. A status missing from the map
// is terminal. Cancellation is handled separately: Cancelled is reachable
// from every non-terminal status and is deliberately not listed per row.
func successors() map[Status][]Status {
	return map[Status][]Status{
		StatusScheduled:        {StatusInProgress},
		StatusInProgress:       {StatusReadyForPickup},
		StatusReadyForPickup:   {StatusPickedUp},
		StatusPickedUp:         {StatusWashing, StatusCompleted},
		StatusWashing:          {StatusWashed},
		StatusWashed:           {StatusPickingUp},
		StatusPickingUp:        {StatusDeliveryPickedUp},
		StatusDeliveryPickedUp: {StatusDelivered},
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// String returns the human-readable name, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is a direct successor of s in the
// transition graph. Cancellation of a non-terminal status is always a legal
// transition.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return !s.IsTerminal()
	}
	for _, succ := range successors()[s] {
		if succ == next {
			return true
		}
	}
	return false
}

// Advance transitions to next, which must be a direct successor.
// Returns an InvalidTransitionError otherwise.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}
