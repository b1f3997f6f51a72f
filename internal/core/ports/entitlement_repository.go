package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
)

// EntitlementRepository defines the persistence contract for entitlement
// aggregates. Entitlements are keyed by customer; at most one record exists
// per customer.
type EntitlementRepository interface {
	// Add persists a new entitlement aggregate at version 1.
	Add(ctx context.Context, aggregate *entitlement.Entitlement) error

	// Update persists changes to an existing entitlement, conditional on
	// the aggregate's version still matching the stored record.
	Update(ctx context.Context, aggregate *entitlement.Entitlement) error

	// GetByCustomer retrieves the entitlement for a customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*entitlement.Entitlement, error)

	// GetAllActiveExpired retrieves entitlements still marked active whose
	// expiry has passed. Used by the expiry sweep.
	GetAllActiveExpired(ctx context.Context, now time.Time) ([]*entitlement.Entitlement, error)
}
