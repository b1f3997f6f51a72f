package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves a vendor's processing queue. Orders reach
// the vendor only after the vendor receipt handoff, so the vendor already
// holds custody and the response may carry the code for the delivery
// handoff.
type GetVendorOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's washing queue.
func NewGetVendorOrdersQuery(vendorID kernel.UUID) (GetVendorOrdersQuery, error) {
	query := GetVendorOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose queue is requested.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorOrdersQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	q.vendorID = vendorID
	return nil
}

// GetVendorOrdersQueryResponse is one order in a vendor's queue.
type GetVendorOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Address   string
	Code      string
	CreatedAt time.Time
}
