package services

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Quote is the pricing outcome for an order about to be placed. The placing
// use case copies it verbatim onto the new order.
type Quote struct {
	TotalPrice    int
	PaymentMethod order.PaymentMethod
	PaymentStatus order.PaymentStatus
	FreeOrder     bool
}

// PricingService decides what an order costs and how it is settled. It is
// the single place where the subscription allowance meets item pricing, so
// the free order ledger and the charged total can never disagree.
//
// Pricing rules:
//   - an active subscription covers up to DailyFreeOrderCap orders per
//     calendar day of the configured timezone, each limited to one unit
//     per item
//   - once the daily allowance is spent the order falls back to paid
//     pricing with the regular quantity rules
//   - a paid order totals the line items plus the delivery fee; online
//     payments confirmed upfront are Paid, everything else starts Not Paid
type PricingService struct {
	loc *time.Location
}

// NewPricingService creates a PricingService keyed to the timezone that
// defines when a free order day rolls over.
func NewPricingService(loc *time.Location) (PricingService, error) {
	if loc == nil {
		return PricingService{}, errs.NewValueIsRequiredError("location")
	}
	return PricingService{loc: loc}, nil
}

// Price quotes an order for the given customer entitlement. When the quote
// is free it also consumes one unit of the daily allowance, so Price must
// run inside the same transaction that persists the order. ent may be nil
// for customers without a subscription record.
func (p PricingService) Price(
	ent *entitlement.Entitlement,
	items []order.LineItem,
	deliveryFee int,
	method order.PaymentMethod,
	paymentConfirmed bool,
	now time.Time,
) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Quote{}, err
		}
	}
	if deliveryFee < 0 {
		return Quote{}, errs.NewValueIsInvalidError("delivery fee")
	}

	if ent != nil && ent.IsActive(now) {
		for _, item := range items {
			if item.Quantity() > 1 {
				return Quote{}, entitlement.ErrQuantityExceeded
			}
		}

		err := ent.RedeemDailyFree(now, p.loc)
		if err == nil {
			return Quote{
				TotalPrice:    0,
				PaymentMethod: order.PaymentMethodSubscription,
				PaymentStatus: order.PaymentStatusFreeSubscribed,
				FreeOrder:     true,
			}, nil
		}
		if !errors.Is(err, entitlement.ErrDailyCapReached) {
			return Quote{}, err
		}
	}

	// The subscription method only exists for free orders.
	if method == order.PaymentMethodSubscription {
		return Quote{}, errs.NewValueIsInvalidError("payment method")
	}
	if err := method.Validate(); err != nil {
		return Quote{}, err
	}

	total := deliveryFee
	for _, item := range items {
		total += item.Total()
	}

	status := order.PaymentStatusNotPaid
	if method == order.PaymentMethodOnline && paymentConfirmed {
		status = order.PaymentStatusPaid
	}

	return Quote{
		TotalPrice:    total,
		PaymentMethod: method,
		PaymentStatus: status,
	}, nil
}
