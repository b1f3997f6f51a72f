package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store keeps a version per record; Update applies conditionally on the
// version the aggregate was loaded at, so two workers racing on the same
// record cannot both win.
type OrderRepository interface {
	// Add persists a new order aggregate at version 1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, conditional on the
	// aggregate's version still matching the stored record. A lost race
	// returns errs.ErrVersionConflict for the caller to map or retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
