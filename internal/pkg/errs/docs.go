// Package errs provides standardized error types for the booking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For uniqueness violations (duplicate order, duplicate username)
//   - NoEligibleResourceError: For when a selection pool is empty after exclusions
//   - IntegrityFaultError: For foreign keys pointing at rows that no longer exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, so an adapter
// can map them to transport-level codes without inspecting messages.
package errs
