package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed indicates a zero-value LineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")

// LineItem is one priced service on an order, e.g. "Wash & Fold" at 60 per
// unit for 2 units. Items are immutable after placement.
type LineItem struct {
	name      string
	unitPrice int
	quantity  int

	isConstructed bool
}

// NewLineItem validates and constructs a LineItem. The name must be
// non-empty, the unit price non-negative and the quantity at least 1.
func NewLineItem(name string, unitPrice, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("service name")
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	return LineItem{
		name:          name,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Name returns the service name.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price per unit.
func (li LineItem) UnitPrice() int {
	return li.unitPrice
}

// Quantity returns the number of units.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns unit price times quantity.
func (li LineItem) Total() int {
	return li.unitPrice * li.quantity
}

// Validate returns ErrLineItemIsNotConstructed for the zero value.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}
