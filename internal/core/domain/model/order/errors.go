package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyClaimed is returned when a leg already has a claimant.
	// A claim is set once and never transferred.
	ErrAlreadyClaimed = errors.New("leg is already claimed")

	// ErrNotCustodian is returned when the acting agent is not the claimant
	// (or assigned vendor) the checkpoint requires.
	ErrNotCustodian = errors.New("actor is not the custodian for this handoff")

	// ErrCodeMismatch is returned when the presented handoff code does not
	// exactly match the stored code.
	ErrCodeMismatch = errors.New("handoff code does not match")

	// ErrVendorAlreadyAssigned is returned when an order already has a
	// processing vendor.
	ErrVendorAlreadyAssigned = errors.New("vendor is already assigned")
)

// InvalidTransitionError reports an attempted move that is not an edge of
// the status graph.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
