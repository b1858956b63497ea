// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: for when an object cannot be found in storage
//   - ValueIsInvalidError: for when a value fails validation
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsOutOfRangeError: for when a value lies outside an allowed range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, enabling errors.Is checks
//
// The HTTP adapter relies on the sentinels to translate domain errors into
// response status codes: ErrObjectNotFound maps to 404 while the validation
// sentinels map to 422.
package errs
