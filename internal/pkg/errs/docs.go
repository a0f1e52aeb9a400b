// Package errs provides standardized error types for the food ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but invalid
//   - ObjectNotFoundError: For when an object cannot be found by its identifier
//   - ObjectAlreadyExistsError: For when a unique key is already taken
//   - ReferenceIsInvalidError: For when identifiers point at objects that do not exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - A New... constructor, plus a New...WithCause variant for the value errors
//   - Error() method for formatting the error message
//   - Unwrap() method exposing the sentinel (and the cause, when there is one)
//
// Callers classify failures with errors.Is against the sentinels, so a transport
// layer can map them to responses without knowing which component produced them.
package errs
