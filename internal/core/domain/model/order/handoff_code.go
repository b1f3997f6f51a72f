package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"laundry/internal/pkg/errs"
)

// ErrHandoffCodeIsNotConstructed indicates a zero-value HandoffCode.
var ErrHandoffCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"HandoffCode must be created via NewHandoffCode or HandoffCodeFromString")

var handoffCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// HandoffCode is the short numeric secret proving physical co-presence at a
// handoff. It is a 4-character ASCII digit string, never a number: "0093"
// and "93" are different codes. One code is generated per order and spans
// every leg of its journey.
type HandoffCode struct {
	value string
}

// NewHandoffCode generates a random 4-digit code with leading zeros kept.
func NewHandoffCode() (HandoffCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return HandoffCode{}, fmt.Errorf("generating handoff code: %w", err)
	}
	return HandoffCode{value: fmt.Sprintf("%04d", n.Int64())}, nil
}

// HandoffCodeFromString reconstructs a code from persistence. The value must
// be exactly four ASCII digits.
func HandoffCodeFromString(s string) (HandoffCode, error) {
	if s == "" {
		return HandoffCode{}, errs.NewValueIsRequiredError("handoff code")
	}
	if !handoffCodePattern.MatchString(s) {
		return HandoffCode{}, errs.NewValueIsInvalidErrorWithCause("handoff code",
			fmt.Errorf("%q is not a 4-digit code", s))
	}
	return HandoffCode{value: s}, nil
}

// Matches compares the presented code to the stored one with plain string
// equality. No trimming, no numeric parsing.
func (c HandoffCode) Matches(presented string) bool {
	return c.value != "" && c.value == presented
}

// String returns the 4-digit code.
func (c HandoffCode) String() string {
	return c.value
}

// Validate returns ErrHandoffCodeIsNotConstructed for the zero value.
func (c HandoffCode) Validate() error {
	if c.value == "" {
		return ErrHandoffCodeIsNotConstructed
	}
	return nil
}
