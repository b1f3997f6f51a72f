// Package kernel provides the shared domain primitives of the laundry
// backend.
//
// The package includes:
//   - UUID: a value object for entity and aggregate identifiers
//   - Phone: the validated 10-digit contact number recorded on orders
//   - Role: the verified actor role supplied by the external auth layer
//
// These primitives enforce their invariants at construction time, are
// immutable, and are safe for concurrent use.
package kernel
