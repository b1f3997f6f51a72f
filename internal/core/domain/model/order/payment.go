package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD

	// PaymentMethodOnline is a gateway payment confirmed before placement.
	// The core only sees the confirmed/not-confirmed outcome.
	PaymentMethodOnline

	// PaymentMethodSubscription covers the order from the customer's daily
	// free-order entitlement.
	PaymentMethodSubscription
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCOD:          "COD",
		PaymentMethodOnline:       "Online",
		PaymentMethodSubscription: "Subscription",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a known payment method", s))
}

// String returns the wire representation, or "Unknown" for invalid values.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects PaymentMethodUnknown and out-of-range values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus is the settlement state recorded on the order.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusNotPaid means settlement is still owed (COD).
	PaymentStatusNotPaid

	// PaymentStatusPaid means an online payment was confirmed.
	PaymentStatusPaid

	// PaymentStatusFreeSubscribed means the order was covered by the
	// customer's subscription entitlement; its price is zero.
	PaymentStatusFreeSubscribed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusNotPaid:        "Not Paid",
		PaymentStatusPaid:           "Paid",
		PaymentStatusFreeSubscribed: "Free (Subscribed)",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for st, str := range getPaymentStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a known payment status", s))
}

// String returns the wire representation, or "Unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects PaymentStatusUnknown and out-of-range values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
