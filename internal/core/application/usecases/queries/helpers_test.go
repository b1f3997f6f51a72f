package queries_test

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// mockAggregateTracker ignores tracking calls; query tests exercise reads.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// makeOrder builds an order in an arbitrary lifecycle state for seeding
// the database.
func makeOrder(
	customerID kernel.UUID,
	status order.Status,
	pickupAgentID, deliveryAgentID, vendorID *kernel.UUID,
	createdAt time.Time,
) *order.Order {
	phone, _ := kernel.NewPhone("9876543210")
	code, _ := order.HandoffCodeFromString("0042")
	wash, _ := order.NewLineItem("Wash & Fold", 50, 2)
	iron, _ := order.NewLineItem("Ironing", 20, 1)

	o, _ := order.RestoreOrder(kernel.NewUUID(), customerID,
		[]order.LineItem{wash, iron}, "12 Charles Street", phone,
		order.PaymentMethodCOD, order.PaymentStatusNotPaid, 140, code,
		status, pickupAgentID, deliveryAgentID, vendorID,
		createdAt, 1)
	return o
}

// ptr returns a pointer to the given UUID for optional claimant fields.
func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}
