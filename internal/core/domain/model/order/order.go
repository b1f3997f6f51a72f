package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Order is the aggregate root of the fulfillment workflow. It owns the
// status state machine, the per-leg claims and the handoff code; every
// mutation goes through a method that enforces the transition graph.
//
// Invariants:
//   - status is always a node of the transition graph, moved only along
//     its edges
//   - each claimant field (pickup agent, delivery agent, vendor) is set at
//     most once and never transferred
//   - the total price is fixed at placement
//   - the handoff code spans the whole lifecycle; it is never regenerated
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []LineItem
	totalPrice    int
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	address       string
	phone         kernel.Phone
	code          HandoffCode
	status        Status

	pickupAgentID   *kernel.UUID
	deliveryAgentID *kernel.UUID
	vendorID        *kernel.UUID

	createdAt time.Time
	version   int

	isConstructed bool
}

// NewOrder creates an order in Scheduled status with version 1. The price
// and payment fields come from the pricing engine; NewOrder records them,
// it does not compute them.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	address string,
	phone kernel.Phone,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	totalPrice int,
	code HandoffCode,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusScheduled,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPhone(phone),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setTotalPrice(totalPrice),
		o.setCode(code),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its claim
// fields, status and version.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	address string,
	phone kernel.Phone,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	totalPrice int,
	code HandoffCode,
	status Status,
	pickupAgentID *kernel.UUID,
	deliveryAgentID *kernel.UUID,
	vendorID *kernel.UUID,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, address, phone,
		paymentMethod, paymentStatus, totalPrice, code, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}
	for _, claimant := range []*kernel.UUID{pickupAgentID, deliveryAgentID, vendorID} {
		if claimant != nil {
			if err := claimant.Validate(); err != nil {
				return nil, err
			}
		}
	}

	o.status = status
	o.pickupAgentID = pickupAgentID
	o.deliveryAgentID = deliveryAgentID
	o.vendorID = vendorID
	o.version = version
	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the service line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the price fixed at placement.
func (o *Order) TotalPrice() int {
	return o.totalPrice
}

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Phone returns the delivery contact number.
func (o *Order) Phone() kernel.Phone {
	return o.phone
}

// Code returns the handoff code. Read paths decide who may see it; the
// aggregate itself does not.
func (o *Order) Code() HandoffCode {
	return o.code
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PickupAgent returns the pickup leg claimant, nil if unclaimed.
func (o *Order) PickupAgent() *kernel.UUID {
	return o.pickupAgentID
}

// DeliveryAgent returns the delivery leg claimant, nil if unclaimed.
func (o *Order) DeliveryAgent() *kernel.UUID {
	return o.deliveryAgentID
}

// Vendor returns the assigned processing vendor, nil if unassigned.
func (o *Order) Vendor() *kernel.UUID {
	return o.vendorID
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic concurrency token. It matches the stored
// record at load time; the store bumps it on every successful write.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the order to next along the transition graph. Requesting
// the current status is an idempotent no-op, not an error. Any other
// non-successor target fails with an InvalidTransitionError.
func (o *Order) Advance(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next == o.status {
		return nil
	}

	newStatus, err := o.status.Advance(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel records the terminal Cancelled status. Allowed from any
// non-terminal status.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, StatusCancelled)
	}
	o.status = StatusCancelled
	return nil
}

// ClaimLeg grants agentID exclusive ownership of the leg and advances the
// status to the leg's claimed status. Fails with ErrAlreadyClaimed when the
// leg has a claimant, and with an InvalidTransitionError when the order is
// not in a claimable status for that leg.
//
// The in-memory check alone does not close the claim race; the store must
// apply the resulting write conditionally on the version this aggregate was
// loaded at.
func (o *Order) ClaimLeg(leg Leg, agentID kernel.UUID) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.claimantFor(leg) != nil {
		return ErrAlreadyClaimed
	}
	if !leg.isClaimableFrom(o.status) {
		return NewInvalidTransitionError(o.status, leg.ClaimedStatus())
	}

	switch leg {
	case LegPickup:
		o.pickupAgentID = &agentID
	case LegDelivery:
		o.deliveryAgentID = &agentID
	}
	o.status = leg.ClaimedStatus()
	return nil
}

// AssignVendor records the processing vendor. Set once; a second assignment
// fails with ErrVendorAlreadyAssigned.
func (o *Order) AssignVendor(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	if o.vendorID != nil {
		return ErrVendorAlreadyAssigned
	}
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, StatusWashing)
	}
	o.vendorID = &vendorID
	return nil
}

// VerifyHandoff validates a presented code at a checkpoint and advances the
// status to the checkpoint's next status.
//
// Failure order: ErrNotCustodian when actorID is not the custodian the
// checkpoint requires; InvalidTransitionError when the order is not in the
// checkpoint's required status (this is what stops a second verification of
// the same leg); ErrCodeMismatch when the code differs. The comparison is
// exact string equality, so a stored "0093" never matches a presented "93".
func (o *Order) VerifyHandoff(cp Checkpoint, actorID kernel.UUID, presentedCode string) error {
	if err := cp.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	custodian := o.custodianFor(cp)
	if custodian == nil || !custodian.IsEqual(actorID) {
		return ErrNotCustodian
	}
	if o.status != cp.RequiredStatus() {
		return NewInvalidTransitionError(o.status, cp.NextStatus())
	}
	if !o.code.Matches(presentedCode) {
		return ErrCodeMismatch
	}

	o.status = cp.NextStatus()
	return nil
}

func (o *Order) claimantFor(leg Leg) *kernel.UUID {
	switch leg {
	case LegPickup:
		return o.pickupAgentID
	case LegDelivery:
		return o.deliveryAgentID
	default:
		return nil
	}
}

func (o *Order) custodianFor(cp Checkpoint) *kernel.UUID {
	switch cp {
	case CheckpointPickup:
		return o.pickupAgentID
	case CheckpointVendorReceipt:
		return o.vendorID
	case CheckpointDeliveryPickup, CheckpointFinalDelivery:
		return o.deliveryAgentID
	default:
		return nil
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.phone = phone
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func (o *Order) setPaymentStatus(s PaymentStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.paymentStatus = s
	return nil
}

func (o *Order) setTotalPrice(totalPrice int) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("total price")
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setCode(code HandoffCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}
