package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role identifies the kind of actor invoking an operation. Identity
// verification happens in the external auth layer; the core only receives
// the already-verified actor id and role and enforces what that role may do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel their own.
	RoleCustomer

	// RolePickupAgent claims and carries the pickup leg.
	RolePickupAgent

	// RoleDeliveryAgent claims and carries the delivery leg.
	RoleDeliveryAgent

	// RoleVendor washes orders after receiving custody.
	RoleVendor

	// RoleAdmin operates the back office; not a shared secret, a verified
	// claim on the actor context.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer:      "customer",
		RolePickupAgent:   "pickup-agent",
		RoleDeliveryAgent: "delivery-agent",
		RoleVendor:        "vendor",
		RoleAdmin:         "admin",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// String returns the wire representation, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
