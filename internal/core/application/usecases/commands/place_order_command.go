package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place a laundry
// order. Pricing is not part of the command; the handler derives the total
// and payment status from the customer's entitlement at execution time.
//
// Example:
//
//	items := []order.LineItem{washItem}
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, items,
//	    "12 Charles Street", phone, order.PaymentMethodCOD, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	items            []order.LineItem
	address          string
	phone            kernel.Phone
	paymentMethod    order.PaymentMethod
	paymentConfirmed bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. The payment
// method is the customer's request; free subscription pricing overrides it
// when the entitlement allows.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []order.LineItem,
	address string,
	phone kernel.Phone,
	paymentMethod order.PaymentMethod,
	paymentConfirmed bool,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		paymentConfirmed: paymentConfirmed,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPhone(phone),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested service line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Phone returns the delivery contact number.
func (c PlaceOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// PaymentMethod returns the requested settlement method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PaymentConfirmed reports whether an online payment was confirmed upfront.
func (c PlaceOrderCommand) PaymentConfirmed() bool {
	return c.paymentConfirmed
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}
