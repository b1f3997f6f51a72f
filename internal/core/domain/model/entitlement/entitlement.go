package entitlement

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// DailyFreeOrderCap is the number of free orders an active subscription
// covers per calendar day.
const DailyFreeOrderCap = 2

var (
	ErrEntitlementIsNotConstructed = errs.NewValueIsRequiredError("entitlement must be created via NewEntitlement or RestoreEntitlement")

	// ErrNotActive is returned when a free order is redeemed against an
	// inactive or lapsed subscription.
	ErrNotActive = errors.New("subscription is not active")

	// ErrDailyCapReached is returned when the day's free orders are used up.
	// Callers fall back to paid pricing, it does not abort the order.
	ErrDailyCapReached = errors.New("daily free order cap reached")

	// ErrQuantityExceeded is returned when an active subscriber asks for
	// more than one unit of an item on a single order.
	ErrQuantityExceeded = errors.New("subscription orders are limited to one unit per item")
)

// Entitlement tracks a customer's subscription and the daily free order
// ledger it grants. The usage counter is keyed by a calendar day string; a
// redemption on a new day resets the counter before counting itself.
type Entitlement struct {
	id         kernel.UUID
	customerID kernel.UUID
	plan       Plan
	active     bool
	expiresAt  time.Time
	usageDate  string
	usageCount int
	version    int

	isConstructed bool
}

// NewEntitlement creates an inactive entitlement for a customer.
func NewEntitlement(id kernel.UUID, customerID kernel.UUID) (*Entitlement, error) {
	e := &Entitlement{
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntitlement reconstructs an entitlement from persistence.
func RestoreEntitlement(
	id kernel.UUID,
	customerID kernel.UUID,
	plan Plan,
	active bool,
	expiresAt time.Time,
	usageDate string,
	usageCount int,
	version int,
) (*Entitlement, error) {
	e, err := NewEntitlement(id, customerID)
	if err != nil {
		return nil, err
	}

	if active {
		if err := plan.Validate(); err != nil {
			return nil, err
		}
	}
	if usageCount < 0 {
		return nil, errs.NewValueIsInvalidError("usage count")
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	e.plan = plan
	e.active = active
	e.expiresAt = expiresAt
	e.usageDate = usageDate
	e.usageCount = usageCount
	e.version = version
	return e, nil
}

// Validate ensures the Entitlement was created via a constructor.
func (e *Entitlement) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntitlementIsNotConstructed
	}
	return nil
}

func (e *Entitlement) ID() kernel.UUID {
	return e.id
}

func (e *Entitlement) CustomerID() kernel.UUID {
	return e.customerID
}

func (e *Entitlement) Plan() Plan {
	return e.plan
}

func (e *Entitlement) ExpiresAt() time.Time {
	return e.expiresAt
}

func (e *Entitlement) UsageDate() string {
	return e.usageDate
}

func (e *Entitlement) UsageCount() int {
	return e.usageCount
}

func (e *Entitlement) Version() int {
	return e.version
}

// Active returns the stored activation flag regardless of expiry.
// Persistence uses it; business checks go through IsActive.
func (e *Entitlement) Active() bool {
	return e.active
}

// IsActive reports whether the subscription covers the given instant.
func (e *Entitlement) IsActive(now time.Time) bool {
	return e.active && e.expiresAt.After(now)
}

// Activate starts or extends a subscription for one period of the plan.
// An unexpired subscription is extended from its current expiry, a lapsed
// or fresh one from now.
func (e *Entitlement) Activate(plan Plan, now time.Time) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	from := now
	if e.IsActive(now) {
		from = e.expiresAt
	}
	e.plan = plan
	e.active = true
	e.expiresAt = from.Add(plan.Duration())
	return nil
}

// Expire deactivates a subscription whose expiry has passed. Returns true
// when the entitlement lapsed on this call.
func (e *Entitlement) Expire(now time.Time) bool {
	if !e.active || e.expiresAt.After(now) {
		return false
	}
	e.active = false
	return true
}

// RedeemDailyFree consumes one free order for the calendar day of now in
// loc. The counter resets when the day changes. Returns ErrNotActive for a
// lapsed subscription and ErrDailyCapReached when the day's allowance is
// spent.
func (e *Entitlement) RedeemDailyFree(now time.Time, loc *time.Location) error {
	if !e.IsActive(now) {
		return ErrNotActive
	}

	day := now.In(loc).Format(time.DateOnly)
	if day != e.usageDate {
		e.usageDate = day
		e.usageCount = 0
	}
	if e.usageCount >= DailyFreeOrderCap {
		return ErrDailyCapReached
	}
	e.usageCount++
	return nil
}

func (e *Entitlement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entitlement) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	e.customerID = customerID
	return nil
}
