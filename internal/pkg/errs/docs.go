// Package errs provides standardized error types for the storefront.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - ObjectAlreadyExistsError: an object with the same identity is already stored
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across layers
//
// Handlers map the sentinels to transport responses: the Value* family to a
// rejected request, ErrObjectNotFound to "not found", anything else to a
// server error.
package errs
