// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"laundry/internal/core/ports"
)

// ErrRoleNotAllowed is returned when an actor's role does not permit the
// requested operation on the order.
var ErrRoleNotAllowed = errors.New("role is not allowed to perform this operation")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EntitlementRepoFactory provides access to the entitlement repository within a transaction.
	EntitlementRepoFactory interface {
		EntitlementRepository() ports.EntitlementRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EntitlementUoW manages transactions for entitlement-only operations.
	EntitlementUoW interface {
		TxManager
		EntitlementRepoFactory
	}

	// EntitlementUoWFactory creates new entitlement unit of work instances.
	EntitlementUoWFactory interface {
		Create() EntitlementUoW
	}

	// UoW manages transactions across order and entitlement aggregates.
	// Placing an order writes the free order ledger and the order record in
	// the same transaction, so neither can land without the other.
	UoW interface {
		TxManager
		OrderRepoFactory
		EntitlementRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
