// Package errs provides the standardized error types used across the
// laundry backend.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() to the sentinel
//
// Callers classify failures with errors.Is against the sentinels, so the
// business layer never has to parse error strings. ErrVersionConflict is the
// one concurrency-related member: repositories return it when a conditional
// update finds the record at a different version than the caller read.
package errs
