package kernel

import (
	"fmt"
	"regexp"

	"laundry/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates a zero-value Phone that was not created
// through NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Phone is a value object for the 10-digit contact number recorded on an
// order. The digits are kept exactly as supplied; no country code handling
// or normalization happens at this layer.
type Phone struct {
	number string
}

// NewPhone validates and constructs a Phone. The number must be exactly ten
// ASCII digits.
func NewPhone(number string) (Phone, error) {
	if number == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(number) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a 10-digit number", number))
	}
	return Phone{number: number}, nil
}

// String returns the raw 10-digit number.
func (p Phone) String() string {
	return p.number
}

// IsEqual compares two phone numbers digit for digit.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.number == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
