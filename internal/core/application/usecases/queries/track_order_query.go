package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves one order for its owning customer, line items
// and handoff code included. The handler enforces ownership; a foreign
// customer gets object-not-found, never a hint that the order exists.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track a single order.
func NewTrackOrderQuery(orderID kernel.UUID, customerID kernel.UUID) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setCustomerID(customerID),
	); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the tracked order.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer.
func (q TrackOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *TrackOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *TrackOrderQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

// TrackedItemResponse is one service line on a tracked order.
type TrackedItemResponse struct {
	Name      string
	UnitPrice int
	Quantity  int
}

// TrackOrderQueryResponse is the customer's full view of one order.
type TrackOrderQueryResponse struct {
	ID            kernel.UUID
	Status        string
	Address       string
	Phone         string
	Items         []TrackedItemResponse
	TotalPrice    int
	PaymentMethod string
	PaymentStatus string
	Code          string
	CreatedAt     time.Time
}
