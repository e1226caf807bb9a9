// Package errs provides standardized error types for the delivery desk.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an order or active delivery cannot be found
//   - StateConflictError: For delivery transitions that are illegal in the current state
//   - PersistenceError: For storage failures at the boundary
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error chain to a Kind (validation, not found, conflict,
// persistence, internal), which the HTTP adapter turns into a status code.
package errs
