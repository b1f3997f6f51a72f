package entitlement

import (
	"time"

	"laundry/internal/pkg/errs"
)

// Plan is a subscription billing period.
type Plan int

const (
	PlanUnknown Plan = iota
	PlanMonthly
	PlanAnnual
)

func getPlanStrings() map[Plan]string {
	return map[Plan]string{
		PlanMonthly: "monthly",
		PlanAnnual:  "annual",
	}
}

// Duration returns how long one paid period of the plan lasts.
func (p Plan) Duration() time.Duration {
	switch p {
	case PlanAnnual:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

func (p Plan) String() string {
	return getPlanStrings()[p]
}

func (p Plan) Validate() error {
	if _, ok := getPlanStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("plan")
	}
	return nil
}

// PlanFromString parses the wire representation of a plan.
func PlanFromString(s string) (Plan, error) {
	for plan, name := range getPlanStrings() {
		if name == s {
			return plan, nil
		}
	}
	return PlanUnknown, errs.NewValueIsInvalidErrorWithCause("plan",
		errs.NewValueIsInvalidError(s))
}
